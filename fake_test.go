package glstate

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// fakeDriver is a recording Driver. Every call increments a named
// counter, so tests can assert that redundant calls were elided and
// required calls were issued. Captured state and capability flags are
// configurable per test.
type fakeDriver struct {
	calls map[string]int

	loadErr  error
	vendor   string
	features Features
	funcs    Funcs

	// Canned capture-query results.
	ints   map[Param]int
	int4s  map[Param][4]int32
	floats map[Param]float32
	f4s    map[Param][4]float32
	attrib [4]float32

	// Observable call effects.
	activeUnit   int
	boundTexture TextureID
	nextTexture  TextureID
	deleted      []TextureID
	viewport     Rect
	scissor      Rect
	blendSrc     BlendFactor
	blendDst     BlendFactor
	matrixMode   MatrixMode
	loadedMats   []mgl32.Mat4
}

// newFakeDriver returns a fake resembling a programmable-tier driver
// with four texture units and full blend support.
func newFakeDriver() *fakeDriver {
	d := &fakeDriver{
		calls: make(map[string]int),
		features: Features{
			GenericAttribs:    true,
			FixedFunction:     true,
			Multitexture:      true,
			Framebuffers:      true,
			DrawBuffers:       true,
			AnisotropicFilter: true,
		},
		ints: map[Param]int{
			ParamMaxCombinedTextureUnits: 4,
			ParamActiveTexture:           0,
			ParamTextureBinding2D:        0,
			ParamMaxTextureSize:          4096,
			ParamMaxColorAttachments:     8,
			ParamMaxDrawBuffers:          4,
			ParamDrawFramebufferBinding:  0,
		},
		int4s: map[Param][4]int32{
			ParamViewport:   {0, 0, 640, 480},
			ParamScissorBox: {0, 0, 640, 480},
		},
		floats: map[Param]float32{
			ParamPointSize:     1,
			ParamMaxAnisotropy: 16,
		},
		f4s: map[Param][4]float32{
			ParamClearColor:   {0, 0, 0, 0},
			ParamCurrentColor: {1, 1, 1, 1},
		},
		attrib:      [4]float32{1, 1, 1, 1},
		nextTexture: 100,
	}
	d.funcs = Funcs{
		BlendEquation: func(BlendEquation) { d.calls["BlendEquation"]++ },
		BlendFuncSeparate: func(srcRGB, dstRGB, srcAlpha, dstAlpha BlendFactor) {
			d.calls["BlendFuncSeparate"]++
		},
	}
	return d
}

// newLegacyFakeDriver returns a fake resembling an old fixed-function
// driver: one texture unit, no blend equation entry points, no
// framebuffers.
func newLegacyFakeDriver() *fakeDriver {
	d := newFakeDriver()
	d.features = Features{FixedFunction: true}
	d.funcs = Funcs{}
	return d
}

func (d *fakeDriver) Load() error {
	d.calls["Load"]++
	return d.loadErr
}

func (d *fakeDriver) VendorString() string { return d.vendor }

func (d *fakeDriver) Features() Features {
	d.calls["Features"]++
	return d.features
}
func (d *fakeDriver) Funcs() *Funcs        { return &d.funcs }

func (d *fakeDriver) GetInt(p Param) int {
	d.calls["GetInt"]++
	if p == ParamActiveTexture {
		return d.activeUnit
	}
	return d.ints[p]
}

func (d *fakeDriver) GetInt4(p Param) [4]int32 {
	d.calls["GetInt4"]++
	return d.int4s[p]
}

func (d *fakeDriver) GetFloat(p Param) float32 {
	d.calls["GetFloat"]++
	return d.floats[p]
}

func (d *fakeDriver) GetFloat4(p Param) [4]float32 {
	d.calls["GetFloat4"]++
	return d.f4s[p]
}

func (d *fakeDriver) CurrentGenericAttrib(VertexAttrib) [4]float32 {
	d.calls["CurrentGenericAttrib"]++
	return d.attrib
}

func (d *fakeDriver) ClearColor(r, g, b, a float32) { d.calls["ClearColor"]++ }
func (d *fakeDriver) Color4ub(r, g, b, a uint8)     { d.calls["Color4ub"]++ }

func (d *fakeDriver) VertexAttrib4f(VertexAttrib, float32, float32, float32, float32) {
	d.calls["VertexAttrib4f"]++
}

func (d *fakeDriver) Viewport(r Rect) {
	d.calls["Viewport"]++
	d.viewport = r
}

func (d *fakeDriver) Scissor(r Rect) {
	d.calls["Scissor"]++
	d.scissor = r
}

func (d *fakeDriver) BlendFunc(src, dst BlendFactor) {
	d.calls["BlendFunc"]++
	d.blendSrc, d.blendDst = src, dst
}

func (d *fakeDriver) PointSize(float32) { d.calls["PointSize"]++ }

func (d *fakeDriver) ActiveTexture(unit int) {
	d.calls["ActiveTexture"]++
	d.activeUnit = unit
}

func (d *fakeDriver) BindTexture(tex TextureID) {
	d.calls["BindTexture"]++
	d.boundTexture = tex
}

func (d *fakeDriver) CreateTexture() TextureID {
	d.calls["CreateTexture"]++
	d.nextTexture++
	return d.nextTexture
}

func (d *fakeDriver) DeleteTexture(tex TextureID) {
	d.calls["DeleteTexture"]++
	d.deleted = append(d.deleted, tex)
}

func (d *fakeDriver) TexFilter(MinFilter, FilterMode) { d.calls["TexFilter"]++ }
func (d *fakeDriver) TexWrap(WrapMode, WrapMode)      { d.calls["TexWrap"]++ }
func (d *fakeDriver) TexAnisotropy(float32)           { d.calls["TexAnisotropy"]++ }
func (d *fakeDriver) TexImage2D(int, int, []byte)     { d.calls["TexImage2D"]++ }

func (d *fakeDriver) EnableVertexAttribArray(VertexAttrib)  { d.calls["EnableVertexAttribArray"]++ }
func (d *fakeDriver) DisableVertexAttribArray(VertexAttrib) { d.calls["DisableVertexAttribArray"]++ }
func (d *fakeDriver) EnableClientState(ClientState)         { d.calls["EnableClientState"]++ }
func (d *fakeDriver) DisableClientState(ClientState)        { d.calls["DisableClientState"]++ }

func (d *fakeDriver) VertexAttribPointer(attrib VertexAttrib, size int, typ DataType, normalized bool, stride int, pointer unsafe.Pointer) {
	d.calls["VertexAttribPointer"]++
	if normalized {
		d.calls["VertexAttribPointerNormalized"]++
	}
}

func (d *fakeDriver) VertexPointer(int, DataType, int, unsafe.Pointer)   { d.calls["VertexPointer"]++ }
func (d *fakeDriver) TexCoordPointer(int, DataType, int, unsafe.Pointer) { d.calls["TexCoordPointer"]++ }
func (d *fakeDriver) ColorPointer(int, DataType, int, unsafe.Pointer)    { d.calls["ColorPointer"]++ }

func (d *fakeDriver) MatrixMode(mode MatrixMode) {
	d.calls["MatrixMode"]++
	d.matrixMode = mode
}

func (d *fakeDriver) LoadMatrix(m *[16]float32) {
	d.calls["LoadMatrix"]++
	d.loadedMats = append(d.loadedMats, mgl32.Mat4(*m))
}

func (d *fakeDriver) DrawArrays(Primitive, int, int) { d.calls["DrawArrays"]++ }

func (d *fakeDriver) DrawElements(Primitive, int, IndexType, unsafe.Pointer) {
	d.calls["DrawElements"]++
}

// errLoadFailed is the canned Load failure used by lifecycle tests.
var errLoadFailed = errors.New("no entry points")

// newInitContext creates and initializes a context over the given fake,
// failing the test on error.
func newInitContext(t *testing.T, d *fakeDriver) *Context {
	t.Helper()
	c := NewContext(WithDriver(d))
	if err := c.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	return c
}

// fakeTarget is a RenderTarget recording ResolveMSAA calls.
type fakeTarget struct {
	resolved int
}

func (t *fakeTarget) ResolveMSAA() { t.resolved++ }

// fakeProgram records built-in uploads.
type fakeProgram struct {
	matrices map[Builtin]mgl32.Mat4
	floats   map[Builtin]float32
	targets  []RenderTarget
	uploads  int
}

func newFakeProgram() *fakeProgram {
	return &fakeProgram{
		matrices: make(map[Builtin]mgl32.Mat4),
		floats:   make(map[Builtin]float32),
	}
}

func (p *fakeProgram) SetBuiltinMatrix(b Builtin, m mgl32.Mat4) {
	p.matrices[b] = m
	p.uploads++
}

func (p *fakeProgram) SetBuiltinFloat(b Builtin, v float32) {
	p.floats[b] = v
	p.uploads++
}

func (p *fakeProgram) BoundTargets() []RenderTarget { return p.targets }
