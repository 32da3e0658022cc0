package glstate

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// threadGuard is the debug-mode affinity assertion behind
// WithThreadGuard. The context, like the driver it mirrors, belongs to
// the thread that created the graphics context; the guard approximates
// that with goroutine identity, which is the strongest check available
// without reaching into the runtime. Disabled guards cost a single bool
// load per call.
type threadGuard struct {
	enabled bool
	goid    uint64
}

// capture records the owning goroutine. Called once, from Init.
func (g *threadGuard) capture() {
	if g.enabled {
		g.goid = curGoroutineID()
	}
}

// check panics when called from a goroutine other than the owner. A
// guard that has not captured yet (pre-Init driver calls) passes.
func (g *threadGuard) check() {
	if !g.enabled || g.goid == 0 {
		return
	}
	if id := curGoroutineID(); id != g.goid {
		panic(fmt.Sprintf("glstate: context used from goroutine %d, owned by goroutine %d", id, g.goid))
	}
}

var goroutinePrefix = []byte("goroutine ")

// curGoroutineID parses the goroutine ID out of the runtime stack header
// ("goroutine N [running]:"). The runtime exposes no cheaper portable way
// to identify the current goroutine.
func curGoroutineID() uint64 {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	buf = bytes.TrimPrefix(buf, goroutinePrefix)
	i := bytes.IndexByte(buf, ' ')
	if i < 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(buf[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
