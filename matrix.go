package glstate

import "github.com/go-gl/mathgl/mgl32"

// Matrix stacks
//
// Two independent stacks, transform and projection, each holding at least
// one entry at all times. The top of each stack is the current matrix;
// callers mutate it in place through the returned pointer and balance
// their own push/pop pairs.

// PushTransform duplicates the top of the transform stack.
func (c *Context) PushTransform() {
	c.guard.check()
	c.transformStack = append(c.transformStack, c.transformStack[len(c.transformStack)-1])
}

// PopTransform removes the top of the transform stack. Popping the last
// remaining entry is a caller error: the stack is left untouched and the
// misuse is logged, keeping the size >= 1 invariant intact.
func (c *Context) PopTransform() {
	c.guard.check()
	if len(c.transformStack) == 1 {
		Logger().Warn("glstate: transform stack pop with a single entry remaining; ignored")
		return
	}
	c.transformStack = c.transformStack[:len(c.transformStack)-1]
}

// Transform returns a pointer to the top of the transform stack. The
// pointer is valid until the next PushTransform or PopTransform.
func (c *Context) Transform() *mgl32.Mat4 {
	return &c.transformStack[len(c.transformStack)-1]
}

// PushProjection duplicates the top of the projection stack.
func (c *Context) PushProjection() {
	c.guard.check()
	c.projectionStack = append(c.projectionStack, c.projectionStack[len(c.projectionStack)-1])
}

// PopProjection removes the top of the projection stack, with the same
// single-entry protection as PopTransform.
func (c *Context) PopProjection() {
	c.guard.check()
	if len(c.projectionStack) == 1 {
		Logger().Warn("glstate: projection stack pop with a single entry remaining; ignored")
		return
	}
	c.projectionStack = c.projectionStack[:len(c.projectionStack)-1]
}

// Projection returns a pointer to the top of the projection stack. The
// pointer is valid until the next PushProjection or PopProjection.
func (c *Context) Projection() *mgl32.Mat4 {
	return &c.projectionStack[len(c.projectionStack)-1]
}

// SetProjection replaces the top of the projection stack.
func (c *Context) SetProjection(m mgl32.Mat4) {
	c.guard.check()
	c.projectionStack[len(c.projectionStack)-1] = m
}

// TransformDepth returns the transform stack size, for push/pop balance
// checks in callers and tests.
func (c *Context) TransformDepth() int { return len(c.transformStack) }
