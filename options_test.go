package glstate

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.driver != nil {
		t.Error("default options carry a driver")
	}
	if o.threadGuard {
		t.Error("thread guard enabled by default")
	}
}

func TestWithDriver(t *testing.T) {
	d := newFakeDriver()
	o := defaultOptions()
	WithDriver(d)(&o)
	if o.driver != Driver(d) {
		t.Error("WithDriver did not set the driver")
	}
}

func TestWithThreadGuard(t *testing.T) {
	o := defaultOptions()
	WithThreadGuard()(&o)
	if !o.threadGuard {
		t.Error("WithThreadGuard did not enable the guard")
	}
}
