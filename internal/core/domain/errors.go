package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDataUnavailable indicates the airfoil coefficient table cannot be obtained.
	// Generation is impossible without the dataset.
	ErrDataUnavailable = errors.New("airfoil dataset unavailable")

	// ErrAirfoilNotFound indicates the requested airfoil is not in the dataset.
	ErrAirfoilNotFound = errors.New("airfoil not found")

	// ErrInvalidGeometry indicates wing parameters failed validation.
	ErrInvalidGeometry = errors.New("invalid wing geometry")

	// ErrMeshConstruction indicates triangulation could not produce a usable surface.
	ErrMeshConstruction = errors.New("mesh construction failed")

	// ErrExport indicates the binary model container could not be written.
	ErrExport = errors.New("model export failed")
)

// AirfoilNotFoundError reports a dataset lookup miss with the requested name.
type AirfoilNotFoundError struct {
	// Name is the airfoil identifier that was requested.
	Name string
}

func (e *AirfoilNotFoundError) Error() string {
	return fmt.Sprintf("airfoil %q not found in dataset", e.Name)
}

// Unwrap makes errors.Is(err, ErrAirfoilNotFound) succeed.
func (e *AirfoilNotFoundError) Unwrap() error { return ErrAirfoilNotFound }

// GeometryError reports the first wing parameter that failed validation.
type GeometryError struct {
	// Field is the parameter name, e.g. "root_chord".
	Field string

	// Value is the offending value.
	Value float64
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid wing geometry: %s=%v", e.Field, e.Value)
}

// Unwrap makes errors.Is(err, ErrInvalidGeometry) succeed.
func (e *GeometryError) Unwrap() error { return ErrInvalidGeometry }

// MeshError reports why a triangulation strategy failed.
type MeshError struct {
	// Strategy is the triangulation policy that was running.
	Strategy MeshingStrategy

	// Reason describes the failure, e.g. "fewer than 4 points".
	Reason string
}

func (e *MeshError) Error() string {
	return fmt.Sprintf("mesh construction failed (%s): %s", e.Strategy, e.Reason)
}

// Unwrap makes errors.Is(err, ErrMeshConstruction) succeed.
func (e *MeshError) Unwrap() error { return ErrMeshConstruction }

// ExportError wraps a failure while writing the binary model container.
type ExportError struct {
	// Cause is the underlying write or encode failure.
	Cause error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("model export failed: %v", e.Cause)
}

// Unwrap makes errors.Is succeed against both ErrExport and the cause.
func (e *ExportError) Unwrap() []error { return []error{ErrExport, e.Cause} }
