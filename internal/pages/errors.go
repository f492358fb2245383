package pages

import "errors"

var (
	// ErrNotFound indicates no route is declared for the requested path.
	ErrNotFound = errors.New("route not found")

	// ErrDuplicatePath indicates two routes declare the same path.
	ErrDuplicatePath = errors.New("duplicate route path")

	// ErrInvalidPath indicates a route path is empty or not absolute.
	ErrInvalidPath = errors.New("invalid route path")
)
