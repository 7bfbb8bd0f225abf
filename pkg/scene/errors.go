package scene

import "errors"

var (
	// ErrUnknownScene is returned when a builtin scene name is not registered
	ErrUnknownScene = errors.New("scene: unknown scene")
)
