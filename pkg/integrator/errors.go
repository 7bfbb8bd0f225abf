package integrator

import "errors"

var (
	// ErrZeroSamplesPerPixel is returned when the sampler asks for no samples
	ErrZeroSamplesPerPixel = errors.New("integrator: samples per pixel must be positive")

	// ErrEmptyPixelBounds is returned when there are no pixels to render
	ErrEmptyPixelBounds = errors.New("integrator: pixel bounds are empty")

	// ErrNilCollaborator is returned when a required camera, film, sampler or scene is missing
	ErrNilCollaborator = errors.New("integrator: missing collaborator")
)
