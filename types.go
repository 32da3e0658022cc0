package glstate

// Driver resource handles
//
// These opaque handles name resources owned by the underlying driver.
// glstate never allocates or frees the memory behind them, with one
// exception: the default texture created during Init and released in Close.
// Every other handle follows a "created by X, destroyed by X" rule enforced
// by the caller.

// TextureID is an opaque handle to a driver texture object.
type TextureID uint32

// FramebufferID is an opaque handle to a driver framebuffer object.
type FramebufferID uint32

// NoTexture is the zero value, representing "no texture bound".
const NoTexture TextureID = 0

// Vendor identifies the driver vendor, classified from the free-form
// vendor string reported after context creation.
type Vendor int

// Vendor categories.
const (
	VendorUnknown Vendor = iota
	VendorAMD
	VendorNVIDIA
	VendorIntel
	VendorMesa
	VendorApple
	VendorMicrosoft
	VendorImgTec
	VendorARM
	VendorQualcomm
	VendorBroadcom
	VendorVivante
)

// String returns a short human-readable vendor name.
func (v Vendor) String() string {
	switch v {
	case VendorAMD:
		return "AMD"
	case VendorNVIDIA:
		return "NVIDIA"
	case VendorIntel:
		return "Intel"
	case VendorMesa:
		return "Mesa"
	case VendorApple:
		return "Apple"
	case VendorMicrosoft:
		return "Microsoft"
	case VendorImgTec:
		return "Imagination"
	case VendorARM:
		return "ARM"
	case VendorQualcomm:
		return "Qualcomm"
	case VendorBroadcom:
		return "Broadcom"
	case VendorVivante:
		return "Vivante"
	default:
		return "unknown"
	}
}

// PipelineTier selects which of the two driver programming models every
// operation dispatches to. It is resolved once during Init and never
// changes for the lifetime of the context.
type PipelineTier int

const (
	// TierFixedFunction is the legacy pipeline: named client arrays,
	// global matrix state, per-vertex color via the color call.
	TierFixedFunction PipelineTier = iota

	// TierProgrammable is the shader pipeline: generic numbered
	// attributes, matrices uploaded as uniforms.
	TierProgrammable
)

// String returns the tier name for logging.
func (t PipelineTier) String() string {
	if t == TierProgrammable {
		return "programmable"
	}
	return "fixed-function"
}

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Rect is a rectangle in the caller's top-left-origin convention.
// Conversion to the driver's convention, where it differs, happens only at
// the driver-call boundary.
type Rect struct {
	X, Y, W, H int
}

// BlendFactor is an abstract blend factor enumerant.
type BlendFactor int

// Blend factors.
const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstColor
	BlendOneMinusDstColor
	BlendDstAlpha
	BlendOneMinusDstAlpha
)

// BlendEquation is an abstract blend equation enumerant.
type BlendEquation int

// Blend equations. BlendAdd is the driver's built-in default and is the
// only equation guaranteed to work on every capability tier.
const (
	BlendAdd BlendEquation = iota
	BlendSubtract
	BlendReverseSubtract
	BlendMin
	BlendMax
)

// BlendState describes the full blend configuration as abstract
// enumerants. It is resolved to concrete driver calls by SetBlendState.
type BlendState struct {
	SrcRGB, SrcAlpha BlendFactor
	DstRGB, DstAlpha BlendFactor
	Equation         BlendEquation
}

// VertexAttrib is a semantic vertex attribute role. On the programmable
// tier the value doubles as the generic attribute index.
type VertexAttrib int

// Attribute roles.
const (
	AttribPosition VertexAttrib = iota
	AttribTexCoord
	AttribColor
)

// ClientState is a legacy named client-array enumerant, the
// fixed-function counterpart of a generic attribute index.
type ClientState int

// Legacy client arrays.
const (
	ClientStateVertex ClientState = iota
	ClientStateTexCoord
	ClientStateColor
)

// DataType describes the component type of a vertex data stream.
type DataType int

// Vertex component types.
const (
	TypeByte DataType = iota
	TypeUnsignedByte
	TypeShort
	TypeUnsignedShort
	TypeInt
	TypeUnsignedInt
	TypeFloat
)

// IndexType describes the element type of an index stream.
type IndexType int

// Index element types.
const (
	IndexUnsignedByte IndexType = iota
	IndexUnsignedShort
	IndexUnsignedInt
)

// Primitive is a primitive topology for draw submission.
type Primitive int

// Primitive topologies.
const (
	Points Primitive = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
)

// MatrixMode selects a legacy global matrix slot.
type MatrixMode int

// Legacy matrix slots.
const (
	MatrixModelView MatrixMode = iota
	MatrixProjection
)

// FilterMode is a texture sampling filter.
type FilterMode int

// Filter modes. FilterNone is only meaningful for the mipmap slot of a
// TextureFilter and disables mipmapped sampling.
const (
	FilterNone FilterMode = iota
	FilterNearest
	FilterLinear
)

// TextureFilter describes min/mag/mipmap filtering plus anisotropy for the
// currently bound texture.
type TextureFilter struct {
	Min, Mag, Mipmap FilterMode
	Anisotropy       float32
}

// MinFilter is the resolved driver min-filter enumerant, combining the
// abstract min and mipmap modes.
type MinFilter int

// Resolved min filters.
const (
	MinNearest MinFilter = iota
	MinLinear
	MinNearestMipmapNearest
	MinNearestMipmapLinear
	MinLinearMipmapNearest
	MinLinearMipmapLinear
)

// WrapMode is a texture coordinate wrap mode.
type WrapMode int

// Wrap modes.
const (
	WrapClamp WrapMode = iota
	WrapRepeat
	WrapMirroredRepeat
)

// TextureWrap describes wrapping along both texture axes.
type TextureWrap struct {
	S, T WrapMode
}

// Stats are running counters maintained by the context. DrawCalls is
// monotonically increasing; TextureMemory tracks the caller-reported total
// and never goes below zero.
type Stats struct {
	DrawCalls     uint64
	TextureMemory uint64
}
