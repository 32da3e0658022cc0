package gldriver

import (
	"github.com/go-gl/gl/v2.1/gl"

	"github.com/gogpu/glstate"
)

// Conversions from the abstract glstate enumerants to raw driver
// constants. Each falls back to a safe default for values it does not
// recognize; the abstract enums are closed sets, so the defaults are
// unreachable short of caller error.

func paramEnum(p glstate.Param) uint32 {
	switch p {
	case glstate.ParamClearColor:
		return gl.COLOR_CLEAR_VALUE
	case glstate.ParamCurrentColor:
		return gl.CURRENT_COLOR
	case glstate.ParamViewport:
		return gl.VIEWPORT
	case glstate.ParamScissorBox:
		return gl.SCISSOR_BOX
	case glstate.ParamPointSize:
		return gl.POINT_SIZE
	case glstate.ParamActiveTexture:
		return gl.ACTIVE_TEXTURE
	case glstate.ParamTextureBinding2D:
		return gl.TEXTURE_BINDING_2D
	case glstate.ParamMaxCombinedTextureUnits:
		return gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS
	case glstate.ParamMaxTextureSize:
		return gl.MAX_TEXTURE_SIZE
	case glstate.ParamMaxColorAttachments:
		return gl.MAX_COLOR_ATTACHMENTS
	case glstate.ParamMaxDrawBuffers:
		return gl.MAX_DRAW_BUFFERS
	case glstate.ParamMaxAnisotropy:
		return gl.MAX_TEXTURE_MAX_ANISOTROPY_EXT
	case glstate.ParamDrawFramebufferBinding:
		return gl.DRAW_FRAMEBUFFER_BINDING
	default:
		return 0
	}
}

func blendFactor(f glstate.BlendFactor) uint32 {
	switch f {
	case glstate.BlendZero:
		return gl.ZERO
	case glstate.BlendOne:
		return gl.ONE
	case glstate.BlendSrcColor:
		return gl.SRC_COLOR
	case glstate.BlendOneMinusSrcColor:
		return gl.ONE_MINUS_SRC_COLOR
	case glstate.BlendSrcAlpha:
		return gl.SRC_ALPHA
	case glstate.BlendOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case glstate.BlendDstColor:
		return gl.DST_COLOR
	case glstate.BlendOneMinusDstColor:
		return gl.ONE_MINUS_DST_COLOR
	case glstate.BlendDstAlpha:
		return gl.DST_ALPHA
	case glstate.BlendOneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	default:
		return gl.ONE
	}
}

func blendEquation(eq glstate.BlendEquation) uint32 {
	switch eq {
	case glstate.BlendAdd:
		return gl.FUNC_ADD
	case glstate.BlendSubtract:
		return gl.FUNC_SUBTRACT
	case glstate.BlendReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case glstate.BlendMin:
		return gl.MIN
	case glstate.BlendMax:
		return gl.MAX
	default:
		return gl.FUNC_ADD
	}
}

func clientState(array glstate.ClientState) uint32 {
	switch array {
	case glstate.ClientStateVertex:
		return gl.VERTEX_ARRAY
	case glstate.ClientStateTexCoord:
		return gl.TEXTURE_COORD_ARRAY
	case glstate.ClientStateColor:
		return gl.COLOR_ARRAY
	default:
		return gl.VERTEX_ARRAY
	}
}

func dataType(typ glstate.DataType) uint32 {
	switch typ {
	case glstate.TypeByte:
		return gl.BYTE
	case glstate.TypeUnsignedByte:
		return gl.UNSIGNED_BYTE
	case glstate.TypeShort:
		return gl.SHORT
	case glstate.TypeUnsignedShort:
		return gl.UNSIGNED_SHORT
	case glstate.TypeInt:
		return gl.INT
	case glstate.TypeUnsignedInt:
		return gl.UNSIGNED_INT
	default:
		return gl.FLOAT
	}
}

func indexType(typ glstate.IndexType) uint32 {
	switch typ {
	case glstate.IndexUnsignedByte:
		return gl.UNSIGNED_BYTE
	case glstate.IndexUnsignedShort:
		return gl.UNSIGNED_SHORT
	default:
		return gl.UNSIGNED_INT
	}
}

func primitive(mode glstate.Primitive) uint32 {
	switch mode {
	case glstate.Points:
		return gl.POINTS
	case glstate.Lines:
		return gl.LINES
	case glstate.LineStrip:
		return gl.LINE_STRIP
	case glstate.LineLoop:
		return gl.LINE_LOOP
	case glstate.Triangles:
		return gl.TRIANGLES
	case glstate.TriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		return gl.TRIANGLE_FAN
	}
}

func minFilter(f glstate.MinFilter) int32 {
	switch f {
	case glstate.MinNearest:
		return gl.NEAREST
	case glstate.MinLinear:
		return gl.LINEAR
	case glstate.MinNearestMipmapNearest:
		return gl.NEAREST_MIPMAP_NEAREST
	case glstate.MinNearestMipmapLinear:
		return gl.NEAREST_MIPMAP_LINEAR
	case glstate.MinLinearMipmapNearest:
		return gl.LINEAR_MIPMAP_NEAREST
	default:
		return gl.LINEAR_MIPMAP_LINEAR
	}
}

func magFilter(f glstate.FilterMode) int32 {
	if f == glstate.FilterNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func wrapMode(w glstate.WrapMode) int32 {
	switch w {
	case glstate.WrapRepeat:
		return gl.REPEAT
	case glstate.WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	default:
		return gl.CLAMP_TO_EDGE
	}
}
