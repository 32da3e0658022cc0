package glstate

// SetViewport applies the viewport rectangle. Viewports share the
// driver's convention, so the rectangle passes through unchanged -- but
// the stored scissor must be re-applied afterwards, because its origin
// flip is derived from the viewport height and the height may just have
// changed.
func (c *Context) SetViewport(r Rect) {
	c.guard.check()
	c.driver.Viewport(r)
	c.state.viewport = r
	c.applyScissor(c.state.scissor)
}

// Viewport returns the stored viewport rectangle.
func (c *Context) Viewport() Rect { return c.state.viewport }

// SetScissor applies the scissor rectangle, given in the caller's
// top-left convention. Offscreen render targets are already top-left
// oriented and take the rectangle as-is; the default target needs the
// y origin flipped against the current viewport height.
func (c *Context) SetScissor(r Rect) {
	c.guard.check()
	c.applyScissor(r)
}

func (c *Context) applyScissor(r Rect) {
	if c.target != nil {
		c.driver.Scissor(r)
	} else {
		flipped := r
		flipped.Y = c.state.viewport.H - (r.Y + r.H)
		c.driver.Scissor(flipped)
	}
	c.state.scissor = r
}

// Scissor returns the stored scissor rectangle, in the caller's top-left
// convention.
func (c *Context) Scissor() Rect { return c.state.scissor }
