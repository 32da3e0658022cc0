package glstate

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMatrix_PushPopBalance(t *testing.T) {
	d := newFakeDriver()
	c := newInitContext(t, d)

	first := mgl32.Translate3D(1, 2, 3)
	*c.Transform() = first

	c.PushTransform()
	c.PushTransform()
	*c.Transform() = mgl32.Scale3D(2, 2, 2)
	c.PopTransform()

	// Two pushes, one pop: depth 2, top back to the value at first push.
	if got := c.TransformDepth(); got != 2 {
		t.Fatalf("TransformDepth() = %d, want 2", got)
	}
	if got := *c.Transform(); got != first {
		t.Errorf("Transform() = %v, want %v", got, first)
	}
}

func TestMatrix_PushDuplicatesTop(t *testing.T) {
	d := newFakeDriver()
	c := newInitContext(t, d)

	*c.Transform() = mgl32.Translate3D(4, 5, 6)
	top := *c.Transform()
	c.PushTransform()

	if got := *c.Transform(); got != top {
		t.Errorf("Transform() after push = %v, want duplicate %v", got, top)
	}
}

func TestMatrix_PopOnSingleEntryRejected(t *testing.T) {
	d := newFakeDriver()
	c := newInitContext(t, d)

	*c.Transform() = mgl32.Translate3D(7, 8, 9)
	before := *c.Transform()

	c.PopTransform()

	if got := c.TransformDepth(); got != 1 {
		t.Fatalf("TransformDepth() = %d, want 1", got)
	}
	if got := *c.Transform(); got != before {
		t.Errorf("Transform() = %v, want untouched %v", got, before)
	}
}

func TestMatrix_ProjectionStackIndependent(t *testing.T) {
	d := newFakeDriver()
	c := newInitContext(t, d)

	proj := mgl32.Ortho(0, 640, 480, 0, -1, 1)
	c.SetProjection(proj)
	c.PushTransform()
	c.PopTransform()

	if got := *c.Projection(); got != proj {
		t.Errorf("Projection() = %v, want %v", got, proj)
	}

	c.PushProjection()
	c.SetProjection(mgl32.Ident4())
	c.PopProjection()
	if got := *c.Projection(); got != proj {
		t.Errorf("Projection() after push/pop = %v, want %v", got, proj)
	}
}
