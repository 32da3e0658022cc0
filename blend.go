package glstate

// SetBlendState resolves the abstract blend descriptor into driver calls.
//
// The equation resolves through the core entry point when present, then
// the extension variant, and otherwise fails with
// ErrBlendEquationUnsupported -- except for BlendAdd, which is the
// driver's built-in default and succeeds silently with no call. The
// factor pair resolves to a single combined call when the color and alpha
// factors agree, else to the separate-factors call through the same
// core, extension, error preference order.
//
// On success the shadow descriptor is updated unconditionally. Unlike
// texture binds there is no redundant-call elision here: blend changes
// are rare relative to rebinds, so the comparison is not worth carrying.
// A failure leaves the shadow descriptor untouched.
func (c *Context) SetBlendState(blend BlendState) error {
	c.guard.check()
	if !c.initialized {
		return ErrNotInitialized
	}
	return c.setBlendState(blend)
}

// setBlendState is SetBlendState without the thread-guard check, used
// during Init before the guard is armed.
func (c *Context) setBlendState(blend BlendState) error {
	switch {
	case c.funcs.BlendEquation != nil:
		c.funcs.BlendEquation(blend.Equation)
	case c.funcs.BlendEquationEXT != nil:
		c.funcs.BlendEquationEXT(blend.Equation)
	default:
		// BlendAdd is in effect even without an equation entry point.
		if blend.Equation != BlendAdd {
			return ErrBlendEquationUnsupported
		}
	}

	if blend.SrcRGB == blend.SrcAlpha && blend.DstRGB == blend.DstAlpha {
		c.driver.BlendFunc(blend.SrcRGB, blend.DstRGB)
	} else {
		switch {
		case c.funcs.BlendFuncSeparate != nil:
			c.funcs.BlendFuncSeparate(blend.SrcRGB, blend.DstRGB, blend.SrcAlpha, blend.DstAlpha)
		case c.funcs.BlendFuncSeparateEXT != nil:
			c.funcs.BlendFuncSeparateEXT(blend.SrcRGB, blend.DstRGB, blend.SrcAlpha, blend.DstAlpha)
		default:
			return ErrSeparateBlendUnsupported
		}
	}

	c.state.blend = blend
	return nil
}

// BlendState returns the shadow blend descriptor.
func (c *Context) BlendState() BlendState { return c.state.blend }
