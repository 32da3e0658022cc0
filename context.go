package glstate

import (
	"fmt"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// contextState is the shadow copy of the driver-visible state this layer
// mirrors. Every driver call that mutates one of these values must be
// routed through the owning Context, or the mirror diverges; the one
// documented exception is texture deletion, which DeleteTexture mirrors
// explicitly because the driver unbinds deleted textures on its own.
type contextState struct {
	color      Color
	clearColor Color

	// viewport and scissor are stored in the caller's top-left
	// convention. The origin flip for the default render target happens
	// at the driver-call boundary and depends on the current viewport
	// height, so SetViewport re-applies the stored scissor.
	viewport Rect
	scissor  Rect

	blend     BlendState
	pointSize float32

	// textureUnits[i] is the handle last successfully bound to unit i,
	// or NoTexture. curTextureUnit is always a valid index.
	textureUnits   []TextureID
	curTextureUnit int

	defaultFBO     FramebufferID
	defaultTexture TextureID

	// Last matrices uploaded to the legacy global slots. NaN-seeded at
	// Init so the first comparison can never match.
	lastProjection mgl32.Mat4
	lastTransform  mgl32.Mat4
}

// Context is the driver state cache. It owns the shadow state for exactly
// one graphics context and must only be used from the thread that owns
// that context; see WithThreadGuard for the debug-mode assertion.
//
// Context implements io.Closer. Close is infallible and idempotent.
type Context struct {
	driver   Driver
	funcs    *Funcs
	caps     caps
	features Features
	state    contextState

	transformStack  []mgl32.Mat4
	projectionStack []mgl32.Mat4

	program Program
	target  RenderTarget

	stats Stats
	guard threadGuard

	initialized bool
}

var _ io.Closer = (*Context)(nil)

// NewContext creates a context mirroring the injected driver. The context
// is unusable until Init succeeds.
//
//	ctx := glstate.NewContext(glstate.WithDriver(gldriver.New()))
//	if err := ctx.Init(); err != nil {
//		...
//	}
//	defer ctx.Close()
//
// Exactly one Context may exist per graphics context; that invariant is
// the caller's to enforce.
func NewContext(opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	c := &Context{
		driver: options.driver,
		guard:  threadGuard{enabled: options.threadGuard},
	}
	c.transformStack = make([]mgl32.Mat4, 1, 10)
	c.projectionStack = make([]mgl32.Mat4, 1, 2)
	c.transformStack[0] = mgl32.Ident4()
	c.projectionStack[0] = mgl32.Ident4()
	return c
}

// Init loads the driver entry points, probes capabilities, and captures
// the live driver state into the shadow. It is idempotent: a second call
// on an initialized context is a no-op returning nil. On failure the
// context stays uninitialized and no other operation may be used.
func (c *Context) Init() error {
	if c.initialized {
		return nil
	}
	if c.driver == nil {
		return fmt.Errorf("%w: no driver injected", ErrEntryPointsUnavailable)
	}
	if err := c.driver.Load(); err != nil {
		return fmt.Errorf("%w: %v", ErrEntryPointsUnavailable, err)
	}

	c.funcs = c.driver.Funcs()
	resolveAliases(c.funcs)

	features := c.driver.Features()
	c.features = features
	c.caps.vendor = classifyVendor(c.driver.VendorString())
	c.caps.tier = pipelineTier(features)

	c.captureState(features)

	// Baseline blend so the shadow and the driver agree from the start.
	blend := BlendState{
		SrcRGB: BlendOne, SrcAlpha: BlendOne,
		DstRGB: BlendZero, DstAlpha: BlendZero,
		Equation: BlendAdd,
	}
	if err := c.setBlendState(blend); err != nil {
		return err
	}

	c.initMaxValues()
	c.createDefaultTexture()

	// Seed the cached matrices with NaN so the first legacy upload can
	// never be elided: NaN compares unequal to everything, itself
	// included.
	nan := float32(math.NaN())
	c.state.lastProjection = mgl32.Ident4()
	c.state.lastProjection[12], c.state.lastProjection[13] = nan, nan
	c.state.lastTransform = c.state.lastProjection

	if features.FixedFunction {
		c.driver.MatrixMode(MatrixModelView)
	}

	c.guard.capture()
	c.initialized = true

	Logger().Info("glstate: context initialized",
		"vendor", c.caps.vendor.String(),
		"tier", c.caps.tier.String(),
		"textureUnits", len(c.state.textureUnits),
		"maxTextureSize", c.caps.maxTextureSize,
		"maxRenderTargets", c.caps.maxRenderTargets,
	)
	return nil
}

// captureState reads the live driver state into the shadow so the first
// elision decisions are made against reality, not zero values.
func (c *Context) captureState(features Features) {
	// Current color: the generic color attribute on the programmable
	// tier, the legacy current-color state otherwise.
	var fc [4]float32
	if features.GenericAttribs {
		fc = c.driver.CurrentGenericAttrib(AttribColor)
	} else {
		fc = c.driver.GetFloat4(ParamCurrentColor)
	}
	c.state.color = colorFromFloats(fc)
	c.state.clearColor = colorFromFloats(c.driver.GetFloat4(ParamClearColor))

	vp := c.driver.GetInt4(ParamViewport)
	c.state.viewport = Rect{int(vp[0]), int(vp[1]), int(vp[2]), int(vp[3])}

	// The driver stores the scissor with a bottom-left origin for the
	// default target; compensate so the shadow holds the caller's
	// top-left convention.
	sc := c.driver.GetInt4(ParamScissorBox)
	c.state.scissor = Rect{int(sc[0]), int(sc[1]), int(sc[2]), int(sc[3])}
	c.state.scissor.Y = c.state.viewport.H - (c.state.scissor.Y + c.state.scissor.H)

	if features.FixedFunction {
		c.state.pointSize = c.driver.GetFloat(ParamPointSize)
	} else {
		c.state.pointSize = 1.0
	}

	// Shader-capable drivers always carry multiple texture units; the
	// multitexture flag only matters for pre-shader hardware.
	if features.GenericAttribs {
		maxUnits := c.driver.GetInt(ParamMaxCombinedTextureUnits)
		if maxUnits < 1 {
			maxUnits = 1
		}
		c.state.textureUnits = make([]TextureID, maxUnits)
		c.state.curTextureUnit = c.driver.GetInt(ParamActiveTexture)

		// Retrieve the currently bound texture on every unit, then
		// restore the active unit.
		for i := range c.state.textureUnits {
			c.driver.ActiveTexture(i)
			c.state.textureUnits[i] = TextureID(c.driver.GetInt(ParamTextureBinding2D))
		}
		c.driver.ActiveTexture(c.state.curTextureUnit)
	} else {
		c.state.textureUnits = make([]TextureID, 1)
		c.state.curTextureUnit = 0
		c.state.textureUnits[0] = TextureID(c.driver.GetInt(ParamTextureBinding2D))
	}

	// Non-zero on some platforms.
	if features.Framebuffers {
		c.state.defaultFBO = FramebufferID(c.driver.GetInt(ParamDrawFramebufferBinding))
	}
}

// Close releases the one driver resource this layer owns, the default
// texture, and returns the context to the uninitialized state. It is a
// no-op when not initialized and never fails; teardown must not.
func (c *Context) Close() error {
	if !c.initialized {
		return nil
	}

	c.driver.DeleteTexture(c.state.defaultTexture)
	c.state.defaultTexture = NoTexture

	c.initialized = false
	Logger().Info("glstate: context torn down")
	return nil
}

// Initialized reports whether Init has completed successfully.
func (c *Context) Initialized() bool { return c.initialized }

// Features returns the capability flags cached at Init. Before Init it
// returns the zero value.
func (c *Context) Features() Features { return c.features }

// SetColor sets the current draw color. On the programmable tier the
// color travels as the generic color attribute; on the legacy tier it is
// the global current color.
func (c *Context) SetColor(col Color) {
	c.guard.check()
	if c.caps.tier == TierProgrammable {
		c.driver.VertexAttrib4f(AttribColor,
			float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255)
	} else {
		c.driver.Color4ub(col.R, col.G, col.B, col.A)
	}
	c.state.color = col
}

// Color returns the current draw color.
func (c *Context) Color() Color { return c.state.color }

// SetClearColor sets the color the driver clears to.
func (c *Context) SetClearColor(col Color) {
	c.guard.check()
	c.driver.ClearColor(
		float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255)
	c.state.clearColor = col
}

// ClearColor returns the current clear color.
func (c *Context) ClearColor() Color { return c.state.clearColor }

// SetPointSize sets the rasterized point size. The driver call exists
// only on the legacy tier; the programmable tier reads the shadow value
// through the point-size built-in during PrepareDraw.
func (c *Context) SetPointSize(size float32) {
	c.guard.check()
	if c.features.FixedFunction {
		c.driver.PointSize(size)
	}
	c.state.pointSize = size
}

// PointSize returns the current point size.
func (c *Context) PointSize() float32 { return c.state.pointSize }

// SetProgram installs the currently bound shader program, or nil when no
// program is bound. PrepareDraw consults it for built-in uniform uploads
// and the pre-sample resolve hook.
func (c *Context) SetProgram(p Program) {
	c.guard.check()
	c.program = p
}

// Program returns the currently bound shader program, or nil.
func (c *Context) Program() Program { return c.program }

// SetRenderTarget installs the active offscreen render target, or nil
// when rendering to the default framebuffer. The scissor origin flip
// applies only to the default target.
func (c *Context) SetRenderTarget(rt RenderTarget) {
	c.guard.check()
	c.target = rt
}

// RenderTarget returns the active offscreen render target, or nil.
func (c *Context) RenderTarget() RenderTarget { return c.target }

// Stats returns a snapshot of the running counters.
func (c *Context) Stats() Stats { return c.stats }

// colorFromFloats converts a normalized float color to 8-bit channels.
func colorFromFloats(f [4]float32) Color {
	return Color{
		R: uint8(f[0] * 255),
		G: uint8(f[1] * 255),
		B: uint8(f[2] * 255),
		A: uint8(f[3] * 255),
	}
}
