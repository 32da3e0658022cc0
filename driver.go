package glstate

import "unsafe"

// Param names a driver value queried during context-state capture.
// The live driver maps each Param to its own enumerant; tests map them to
// canned values.
type Param int

// Capture and limit queries.
const (
	ParamClearColor Param = iota
	ParamCurrentColor
	ParamViewport
	ParamScissorBox
	ParamPointSize
	ParamActiveTexture
	ParamTextureBinding2D
	ParamMaxCombinedTextureUnits
	ParamMaxTextureSize
	ParamMaxColorAttachments
	ParamMaxDrawBuffers
	ParamMaxAnisotropy
	ParamDrawFramebufferBinding
)

// Features are the capability flags of the live driver, queried once after
// entry-point loading and immutable afterwards.
type Features struct {
	// GenericAttribs reports generic numbered vertex attributes, the
	// marker of the programmable tier.
	GenericAttribs bool

	// FixedFunction reports the legacy pipeline: global matrix state,
	// client arrays, point size.
	FixedFunction bool

	// Multitexture reports more than one texture unit.
	Multitexture bool

	// Framebuffers reports render-target (framebuffer object) support.
	Framebuffers bool

	// DrawBuffers reports multiple simultaneous draw buffers.
	DrawBuffers bool

	// AnisotropicFilter reports anisotropic texture filtering.
	AnisotropicFilter bool
}

// Funcs holds the optional driver entry points, grouped so that extension
// variants can be aliased onto the core slots when only the extension is
// exposed. A nil field means the entry point is unavailable; callers must
// check before calling. Alias resolution (resolveAliases) runs during Init,
// before any other component touches these slots.
type Funcs struct {
	// Blend equation: core (1.4 / ES2) and the EXT_blend_minmax +
	// EXT_blend_subtract variant.
	BlendEquation    func(eq BlendEquation)
	BlendEquationEXT func(eq BlendEquation)

	// Separate blend factors: core (1.4 / ES2) and
	// EXT_blend_func_separate.
	BlendFuncSeparate    func(srcRGB, dstRGB, srcAlpha, dstAlpha BlendFactor)
	BlendFuncSeparateEXT func(srcRGB, dstRGB, srcAlpha, dstAlpha BlendFactor)

	// Buffer objects: core (1.5) and ARB_vertex_buffer_object. The two
	// are functionally identical, so the probe aliases the ARB slots
	// onto the core names when only the extension is present.
	GenBuffers        func(n int) []uint32
	BindBuffer        func(target uint32, buffer uint32)
	BufferData        func(target uint32, data []byte, usage uint32)
	BufferSubData     func(target uint32, offset int, data []byte)
	DeleteBuffers     func(buffers []uint32)
	GenBuffersARB     func(n int) []uint32
	BindBufferARB     func(target uint32, buffer uint32)
	BufferDataARB     func(target uint32, data []byte, usage uint32)
	BufferSubDataARB  func(target uint32, offset int, data []byte)
	DeleteBuffersARB  func(buffers []uint32)

	// Indexed draw with a per-call base vertex offset (3.2 /
	// ARB_draw_elements_base_vertex).
	DrawElementsBaseVertex func(mode Primitive, count int, typ IndexType, indices unsafe.Pointer, baseVertex int)
}

// Driver is the call surface glstate consumes from the underlying graphics
// driver. The gldriver package implements it over a live OpenGL binding;
// tests implement it with a recording fake.
//
// Every method is a direct, blocking driver call. Implementations perform
// no caching or elision of their own: that is this package's job, and a
// second mirror below it would break the shadow-state invariants.
type Driver interface {
	// Load resolves the driver entry points. It must be called with a
	// current context on the calling thread and reports failure without
	// side effects.
	Load() error

	// VendorString returns the free-form vendor identification string,
	// or "" when the driver does not provide one.
	VendorString() string

	// Features returns the capability flags. Only valid after Load.
	Features() Features

	// Funcs returns the optional entry points. Only valid after Load.
	// The returned struct is owned by the context afterwards; alias
	// resolution mutates it in place.
	Funcs() *Funcs

	// Capture queries.
	GetInt(p Param) int
	GetInt4(p Param) [4]int32
	GetFloat(p Param) float32
	GetFloat4(p Param) [4]float32
	CurrentGenericAttrib(attrib VertexAttrib) [4]float32

	// Color state.
	ClearColor(r, g, b, a float32)
	Color4ub(r, g, b, a uint8)
	VertexAttrib4f(attrib VertexAttrib, x, y, z, w float32)

	// Viewport and scissor, in the driver's own convention.
	Viewport(r Rect)
	Scissor(r Rect)

	// Blend factors with identical color/alpha pairs. Separate factors
	// and equations go through Funcs.
	BlendFunc(src, dst BlendFactor)

	PointSize(size float32)

	// Texture units and bindings.
	ActiveTexture(unit int)
	BindTexture(tex TextureID)
	CreateTexture() TextureID
	DeleteTexture(tex TextureID)
	TexFilter(min MinFilter, mag FilterMode)
	TexWrap(s, t WrapMode)
	TexAnisotropy(value float32)
	TexImage2D(width, height int, pixels []byte)

	// Vertex attribute streams, both tiers.
	EnableVertexAttribArray(attrib VertexAttrib)
	DisableVertexAttribArray(attrib VertexAttrib)
	EnableClientState(array ClientState)
	DisableClientState(array ClientState)
	VertexAttribPointer(attrib VertexAttrib, size int, typ DataType, normalized bool, stride int, pointer unsafe.Pointer)
	VertexPointer(size int, typ DataType, stride int, pointer unsafe.Pointer)
	TexCoordPointer(size int, typ DataType, stride int, pointer unsafe.Pointer)
	ColorPointer(size int, typ DataType, stride int, pointer unsafe.Pointer)

	// Legacy global matrix state.
	MatrixMode(mode MatrixMode)
	LoadMatrix(m *[16]float32)

	// Draw submission.
	DrawArrays(mode Primitive, first, count int)
	DrawElements(mode Primitive, count int, typ IndexType, indices unsafe.Pointer)
}
