// Package gldriver implements the glstate.Driver interface over a live
// OpenGL binding. It performs no caching of its own: every method is a
// direct driver call, and all elision happens in glstate above it.
//
// The binding targets the 2.1 compatibility surface so both the
// fixed-function and the programmable entry points are reachable; which
// tier glstate actually dispatches to is decided by the probed Features,
// not by this package.
package gldriver

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/gogpu/glstate"
)

// Driver is the live OpenGL implementation of glstate.Driver. Create one
// with New after the context is current on the calling thread, then hand
// it to glstate.NewContext.
type Driver struct {
	loaded   bool
	version  glVersion
	exts     extensionSet
	features glstate.Features
	funcs    glstate.Funcs
}

var _ glstate.Driver = (*Driver)(nil)

// New returns an unloaded Driver. Entry points resolve in Load, which
// glstate calls during Context.Init.
func New() *Driver {
	return &Driver{}
}

// Load resolves the OpenGL entry points and probes version, extensions,
// and optional functions. A graphics context must be current on the
// calling thread.
func (d *Driver) Load() error {
	if d.loaded {
		return nil
	}
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gldriver: loading entry points: %w", err)
	}

	d.version = parseVersion(gl.GoStr(gl.GetString(gl.VERSION)))
	d.exts = parseExtensions(gl.GoStr(gl.GetString(gl.EXTENSIONS)))
	d.features = d.probeFeatures()
	d.probeFuncs()

	d.loaded = true
	return nil
}

// probeFeatures derives the capability flags from the version and
// extension set.
func (d *Driver) probeFeatures() glstate.Features {
	v := d.version
	e := d.exts
	return glstate.Features{
		GenericAttribs:    v.atLeast(2, 0),
		FixedFunction:     true,
		Multitexture:      v.atLeast(1, 3) || e.has("GL_ARB_multitexture"),
		Framebuffers:      v.atLeast(3, 0) || e.has("GL_ARB_framebuffer_object") || e.has("GL_EXT_framebuffer_object"),
		DrawBuffers:       v.atLeast(2, 0) || e.has("GL_ARB_draw_buffers"),
		AnisotropicFilter: e.has("GL_EXT_texture_filter_anisotropic"),
	}
}

// probeFuncs fills the optional entry-point slots. Core slots stay nil
// when the version predates them so glstate's alias resolution and
// fallback order can do their work.
func (d *Driver) probeFuncs() {
	v := d.version
	e := d.exts
	f := &d.funcs

	if v.atLeast(1, 4) {
		f.BlendEquation = func(eq glstate.BlendEquation) {
			gl.BlendEquation(blendEquation(eq))
		}
		f.BlendFuncSeparate = func(srcRGB, dstRGB, srcAlpha, dstAlpha glstate.BlendFactor) {
			gl.BlendFuncSeparate(blendFactor(srcRGB), blendFactor(dstRGB), blendFactor(srcAlpha), blendFactor(dstAlpha))
		}
	}
	if e.has("GL_EXT_blend_minmax") && e.has("GL_EXT_blend_subtract") {
		f.BlendEquationEXT = func(eq glstate.BlendEquation) {
			gl.BlendEquationEXT(blendEquation(eq))
		}
	}
	if e.has("GL_EXT_blend_func_separate") {
		f.BlendFuncSeparateEXT = func(srcRGB, dstRGB, srcAlpha, dstAlpha glstate.BlendFactor) {
			gl.BlendFuncSeparateEXT(blendFactor(srcRGB), blendFactor(dstRGB), blendFactor(srcAlpha), blendFactor(dstAlpha))
		}
	}

	if v.atLeast(1, 5) {
		f.GenBuffers = genBuffers(gl.GenBuffers)
		f.BindBuffer = gl.BindBuffer
		f.BufferData = bufferData(gl.BufferData)
		f.BufferSubData = bufferSubData(gl.BufferSubData)
		f.DeleteBuffers = deleteBuffers(gl.DeleteBuffers)
	}
	if e.has("GL_ARB_vertex_buffer_object") {
		f.GenBuffersARB = genBuffers(gl.GenBuffersARB)
		f.BindBufferARB = gl.BindBufferARB
		f.BufferDataARB = bufferData(gl.BufferDataARB)
		f.BufferSubDataARB = bufferSubData(gl.BufferSubDataARB)
		f.DeleteBuffersARB = deleteBuffers(gl.DeleteBuffersARB)
	}

	if e.has("GL_ARB_draw_elements_base_vertex") {
		f.DrawElementsBaseVertex = func(mode glstate.Primitive, count int, typ glstate.IndexType, indices unsafe.Pointer, baseVertex int) {
			gl.DrawElementsBaseVertex(primitive(mode), int32(count), indexType(typ), indices, int32(baseVertex))
		}
	}
}

// genBuffers adapts the counted-output binding signature to a slice.
func genBuffers(fn func(int32, *uint32)) func(int) []uint32 {
	return func(n int) []uint32 {
		buffers := make([]uint32, n)
		fn(int32(n), &buffers[0])
		return buffers
	}
}

func bufferData(fn func(uint32, int, unsafe.Pointer, uint32)) func(uint32, []byte, uint32) {
	return func(target uint32, data []byte, usage uint32) {
		fn(target, len(data), gl.Ptr(data), usage)
	}
}

func bufferSubData(fn func(uint32, int, int, unsafe.Pointer)) func(uint32, int, []byte) {
	return func(target uint32, offset int, data []byte) {
		fn(target, offset, len(data), gl.Ptr(data))
	}
}

func deleteBuffers(fn func(int32, *uint32)) func([]uint32) {
	return func(buffers []uint32) {
		if len(buffers) == 0 {
			return
		}
		fn(int32(len(buffers)), &buffers[0])
	}
}

// VendorString returns the driver's vendor identification string, or ""
// when the driver does not provide one.
func (d *Driver) VendorString() string {
	s := gl.GetString(gl.VENDOR)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

// Features returns the probed capability flags.
func (d *Driver) Features() glstate.Features { return d.features }

// Funcs returns the optional entry points probed in Load.
func (d *Driver) Funcs() *glstate.Funcs { return &d.funcs }

// GetInt queries a scalar integer driver value.
func (d *Driver) GetInt(p glstate.Param) int {
	var v int32
	gl.GetIntegerv(paramEnum(p), &v)
	if p == glstate.ParamActiveTexture {
		// Reported as an enumerant, consumed as a unit index.
		v -= gl.TEXTURE0
	}
	return int(v)
}

// GetInt4 queries a four-component integer driver value.
func (d *Driver) GetInt4(p glstate.Param) [4]int32 {
	var v [4]int32
	gl.GetIntegerv(paramEnum(p), &v[0])
	return v
}

// GetFloat queries a scalar float driver value.
func (d *Driver) GetFloat(p glstate.Param) float32 {
	var v float32
	gl.GetFloatv(paramEnum(p), &v)
	return v
}

// GetFloat4 queries a four-component float driver value.
func (d *Driver) GetFloat4(p glstate.Param) [4]float32 {
	var v [4]float32
	gl.GetFloatv(paramEnum(p), &v[0])
	return v
}

// CurrentGenericAttrib returns the current value of a generic vertex
// attribute.
func (d *Driver) CurrentGenericAttrib(attrib glstate.VertexAttrib) [4]float32 {
	var v [4]float32
	gl.GetVertexAttribfv(uint32(attrib), gl.CURRENT_VERTEX_ATTRIB, &v[0])
	return v
}

func (d *Driver) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (d *Driver) Color4ub(r, g, b, a uint8)     { gl.Color4ub(r, g, b, a) }

func (d *Driver) VertexAttrib4f(attrib glstate.VertexAttrib, x, y, z, w float32) {
	gl.VertexAttrib4f(uint32(attrib), x, y, z, w)
}

func (d *Driver) Viewport(r glstate.Rect) {
	gl.Viewport(int32(r.X), int32(r.Y), int32(r.W), int32(r.H))
}

func (d *Driver) Scissor(r glstate.Rect) {
	gl.Scissor(int32(r.X), int32(r.Y), int32(r.W), int32(r.H))
}

func (d *Driver) BlendFunc(src, dst glstate.BlendFactor) {
	gl.BlendFunc(blendFactor(src), blendFactor(dst))
}

func (d *Driver) PointSize(size float32) { gl.PointSize(size) }

func (d *Driver) ActiveTexture(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
}

func (d *Driver) BindTexture(tex glstate.TextureID) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
}

func (d *Driver) CreateTexture() glstate.TextureID {
	var tex uint32
	gl.GenTextures(1, &tex)
	return glstate.TextureID(tex)
}

func (d *Driver) DeleteTexture(tex glstate.TextureID) {
	t := uint32(tex)
	gl.DeleteTextures(1, &t)
}

func (d *Driver) TexFilter(min glstate.MinFilter, mag glstate.FilterMode) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter(min))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magFilter(mag))
}

func (d *Driver) TexWrap(s, t glstate.WrapMode) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapMode(s))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapMode(t))
}

func (d *Driver) TexAnisotropy(value float32) {
	gl.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MAX_ANISOTROPY_EXT, value)
}

// TexImage2D uploads single-channel pixels to the bound texture. Only the
// default-texture upload path needs this; full texture streaming lives
// above this layer.
func (d *Driver) TexImage2D(width, height int, pixels []byte) {
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.LUMINANCE, int32(width), int32(height), 0,
		gl.LUMINANCE, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (d *Driver) EnableVertexAttribArray(attrib glstate.VertexAttrib) {
	gl.EnableVertexAttribArray(uint32(attrib))
}

func (d *Driver) DisableVertexAttribArray(attrib glstate.VertexAttrib) {
	gl.DisableVertexAttribArray(uint32(attrib))
}

func (d *Driver) EnableClientState(array glstate.ClientState) {
	gl.EnableClientState(clientState(array))
}

func (d *Driver) DisableClientState(array glstate.ClientState) {
	gl.DisableClientState(clientState(array))
}

func (d *Driver) VertexAttribPointer(attrib glstate.VertexAttrib, size int, typ glstate.DataType, normalized bool, stride int, pointer unsafe.Pointer) {
	gl.VertexAttribPointer(uint32(attrib), int32(size), dataType(typ), normalized, int32(stride), pointer)
}

func (d *Driver) VertexPointer(size int, typ glstate.DataType, stride int, pointer unsafe.Pointer) {
	gl.VertexPointer(int32(size), dataType(typ), int32(stride), pointer)
}

func (d *Driver) TexCoordPointer(size int, typ glstate.DataType, stride int, pointer unsafe.Pointer) {
	gl.TexCoordPointer(int32(size), dataType(typ), int32(stride), pointer)
}

func (d *Driver) ColorPointer(size int, typ glstate.DataType, stride int, pointer unsafe.Pointer) {
	gl.ColorPointer(int32(size), dataType(typ), int32(stride), pointer)
}

func (d *Driver) MatrixMode(mode glstate.MatrixMode) {
	if mode == glstate.MatrixProjection {
		gl.MatrixMode(gl.PROJECTION)
	} else {
		gl.MatrixMode(gl.MODELVIEW)
	}
}

func (d *Driver) LoadMatrix(m *[16]float32) {
	gl.LoadMatrixf(&m[0])
}

func (d *Driver) DrawArrays(mode glstate.Primitive, first, count int) {
	gl.DrawArrays(primitive(mode), int32(first), int32(count))
}

func (d *Driver) DrawElements(mode glstate.Primitive, count int, typ glstate.IndexType, indices unsafe.Pointer) {
	gl.DrawElements(primitive(mode), int32(count), indexType(typ), indices)
}
