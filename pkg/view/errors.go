package view

import "errors"

var (
	// ErrViewNotFound is returned when rendering a name that is not registered.
	ErrViewNotFound = errors.New("view: not found")

	// ErrNilComponent is returned when a factory yields no component.
	ErrNilComponent = errors.New("view: factory returned nil component")
)
