package glstate

import "errors"

// Package errors. Capability failures are surfaced immediately and never
// retried; there is no transient-fault category because driver calls either
// succeed or indicate a programming error.
var (
	// ErrNotInitialized is returned when operations require Init first.
	ErrNotInitialized = errors.New("glstate: context not initialized")

	// ErrEntryPointsUnavailable is returned by Init when the driver
	// entry points cannot be loaded.
	ErrEntryPointsUnavailable = errors.New("glstate: driver entry points unavailable")

	// ErrBlendEquationUnsupported is returned when the requested blend
	// equation has no core or extension entry point on this driver.
	ErrBlendEquationUnsupported = errors.New("glstate: blend equation not supported by this driver")

	// ErrSeparateBlendUnsupported is returned when separate color and
	// alpha blend factors are requested but unavailable.
	ErrSeparateBlendUnsupported = errors.New("glstate: separated rgb and alpha blend functions not supported by this driver")

	// ErrMultitextureUnsupported is returned when a non-zero texture
	// unit is selected on a driver with a single unit.
	ErrMultitextureUnsupported = errors.New("glstate: multitexturing not supported by this driver")

	// ErrInvalidTextureUnit is returned for a texture unit index outside
	// the range queried at Init.
	ErrInvalidTextureUnit = errors.New("glstate: invalid texture unit index")

	// ErrBaseVertexUnsupported is returned by DrawElementsBaseVertex
	// when neither the core nor the extension entry point is present.
	ErrBaseVertexUnsupported = errors.New("glstate: draw elements with base vertex not supported by this driver")
)
