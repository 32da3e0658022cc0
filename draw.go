package glstate

import "unsafe"

// PrepareDraw settles the matrix stack tops into driver-visible form
// immediately before a primitive submission.
//
// With a program bound, any offscreen targets the program samples are
// resolved first -- their multi-sample contents must be finalized before
// the draw reads them -- and then transform, projection, their product,
// and the point size are uploaded as built-in inputs. There is no change
// detection on this path: upload cost belongs to the shader layer.
//
// Without a program, on the legacy tier, the transform and projection are
// compared against the last-uploaded copies and re-uploaded only on a
// difference. The NaN seed planted at Init guarantees the first
// comparison never matches.
func (c *Context) PrepareDraw() {
	c.guard.check()

	transform := c.transformStack[len(c.transformStack)-1]
	projection := c.projectionStack[len(c.projectionStack)-1]

	if c.program != nil {
		for _, rt := range c.program.BoundTargets() {
			rt.ResolveMSAA()
		}
	}

	switch {
	case c.caps.tier == TierProgrammable && c.program != nil:
		c.program.SetBuiltinMatrix(BuiltinTransformMatrix, transform)
		c.program.SetBuiltinMatrix(BuiltinProjectionMatrix, projection)
		c.program.SetBuiltinMatrix(BuiltinTransformProjectionMatrix, projection.Mul4(transform))
		c.program.SetBuiltinFloat(BuiltinPointSize, c.state.pointSize)

	case c.features.FixedFunction:
		if projection != c.state.lastProjection {
			c.driver.MatrixMode(MatrixProjection)
			c.driver.LoadMatrix((*[16]float32)(&projection))
			c.driver.MatrixMode(MatrixModelView)
			c.state.lastProjection = projection
		}
		if transform != c.state.lastTransform {
			c.driver.LoadMatrix((*[16]float32)(&transform))
			c.state.lastTransform = transform
		}
	}
}

// DrawArrays submits count vertices starting at first. A pure
// pass-through plus the draw-call counter; validation is the driver's.
func (c *Context) DrawArrays(mode Primitive, first, count int) {
	c.guard.check()
	c.driver.DrawArrays(mode, first, count)
	c.stats.DrawCalls++
}

// DrawElements submits count indexed vertices.
func (c *Context) DrawElements(mode Primitive, count int, typ IndexType, indices unsafe.Pointer) {
	c.guard.check()
	c.driver.DrawElements(mode, count, typ, indices)
	c.stats.DrawCalls++
}

// DrawElementsBaseVertex submits count indexed vertices with a per-call
// base vertex offset. The entry point is optional; without it the call
// fails with ErrBaseVertexUnsupported and no draw is issued.
func (c *Context) DrawElementsBaseVertex(mode Primitive, count int, typ IndexType, indices unsafe.Pointer, baseVertex int) error {
	c.guard.check()
	if !c.initialized {
		return ErrNotInitialized
	}
	if c.funcs.DrawElementsBaseVertex == nil {
		return ErrBaseVertexUnsupported
	}
	c.funcs.DrawElementsBaseVertex(mode, count, typ, indices, baseVertex)
	c.stats.DrawCalls++
	return nil
}
