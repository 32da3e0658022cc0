package glstate

import "testing"

func TestThreadGuard_PanicsOffOwner(t *testing.T) {
	d := newFakeDriver()
	c := NewContext(WithDriver(d), WithThreadGuard())
	if err := c.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}

	// Same goroutine: fine.
	c.SetColor(Color{255, 255, 255, 255})

	panicked := make(chan bool, 1)
	go func() {
		defer func() { panicked <- recover() != nil }()
		c.SetColor(Color{0, 0, 0, 255})
	}()
	if !<-panicked {
		t.Error("no panic from a foreign goroutine")
	}
}

func TestThreadGuard_DisabledByDefault(t *testing.T) {
	d := newFakeDriver()
	c := newInitContext(t, d)

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.SetColor(Color{0, 0, 0, 255})
	}()
	<-done
}

func TestThreadGuard_InactiveBeforeCapture(t *testing.T) {
	g := &threadGuard{enabled: true}
	g.check()
}

func TestCurGoroutineID(t *testing.T) {
	id := curGoroutineID()
	if id == 0 {
		t.Fatal("curGoroutineID() = 0")
	}
	if curGoroutineID() != id {
		t.Error("goroutine ID unstable within one goroutine")
	}

	other := make(chan uint64, 1)
	go func() { other <- curGoroutineID() }()
	if got := <-other; got == id || got == 0 {
		t.Errorf("foreign goroutine ID = %d, owner = %d", got, id)
	}
}
