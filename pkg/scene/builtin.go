package scene

import (
	"fmt"
	"sort"
)

var builtins = map[string]func() *Scene{
	"cornell":    NewCornellScene,
	"default":    NewDefaultScene,
	"spheregrid": NewSphereGridScene,
	"empty":      NewEmptyScene,
}

// New creates the builtin scene with the given name
func New(name string) (*Scene, error) {
	if name == "" {
		name = "default"
	}
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	s := build()
	s.Name = name
	return s, nil
}

// Names lists the builtin scenes in alphabetical order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
