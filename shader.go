package glstate

import "github.com/go-gl/mathgl/mgl32"

// Builtin names a shader input this layer provides before every draw.
type Builtin int

// Built-in shader inputs.
const (
	BuiltinTransformMatrix Builtin = iota
	BuiltinProjectionMatrix
	BuiltinTransformProjectionMatrix
	BuiltinPointSize
)

// Program is the opaque currently-bound shader program. Compilation,
// linking, and uniform introspection all live above this layer; glstate
// only needs the capability to upload its built-in inputs and to walk the
// program's bound render targets before sampling them.
type Program interface {
	// SetBuiltinMatrix uploads a built-in 4x4 matrix input. Programs
	// without a slot for the given builtin ignore the call.
	SetBuiltinMatrix(b Builtin, m mgl32.Mat4)

	// SetBuiltinFloat uploads a built-in scalar input.
	SetBuiltinFloat(b Builtin, v float32)

	// BoundTargets returns the offscreen render targets currently bound
	// to the program's samplers, in no particular order.
	BoundTargets() []RenderTarget
}

// RenderTarget is an opaque offscreen render-target resource. glstate
// never allocates or frees one; it only asks for multi-sample contents to
// be finalized before they are read inside a draw.
type RenderTarget interface {
	// ResolveMSAA finalizes any unresolved multi-sample contents so the
	// target can be correctly sampled as a texture. Implementations
	// without multi-sampling make this a no-op.
	ResolveMSAA()
}
