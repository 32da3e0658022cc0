// Package glstate is a driver state cache and capability-abstraction
// layer over a stateful, immediate-mode graphics driver.
//
// # Overview
//
// A renderer issues high-level operations -- set color, bind texture, set
// blend mode, draw -- without knowing whether the driver below exposes
// the legacy fixed-function pipeline or the programmable one, and without
// re-issuing driver calls whose effect is already in force. glstate keeps
// an in-process shadow of the driver-visible state (bindings, blend mode,
// viewport and scissor, matrix stacks, attribute streams), elides calls
// the shadow proves redundant, and maps each abstract operation onto the
// call sequence the detected pipeline tier requires.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/glstate"
//		"github.com/gogpu/glstate/gldriver"
//	)
//
//	// After context creation, on the context's thread:
//	ctx := glstate.NewContext(glstate.WithDriver(gldriver.New()))
//	if err := ctx.Init(); err != nil {
//		log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	ctx.SetColor(glstate.Color{R: 255, A: 255})
//	ctx.BindTexture(tex)
//	ctx.PrepareDraw()
//	ctx.DrawArrays(glstate.Triangles, 0, n)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Context plus small value types (Color, Rect,
//     BlendState, TextureFilter)
//   - Driver abstraction: the Driver interface and Funcs entry-point set
//   - Live binding: gldriver, implementing Driver over OpenGL
//
// # Coordinate System
//
// Rectangles use top-left-origin coordinates throughout the public API.
// Where the driver's convention differs (the scissor on the default
// render target), the flip happens at the driver-call boundary and is
// re-derived whenever the viewport changes.
//
// # Concurrency
//
// A Context is bound to the thread that owns the graphics context. Every
// call is synchronous and blocking; calling from another goroutine is
// undefined. WithThreadGuard enables a debug assertion for that rule.
//
// # Out of Scope
//
// Shader compilation and introspection, resource streaming, context and
// surface creation, and geometry batching all live above or beside this
// layer and are consumed through small interfaces (Program,
// RenderTarget) or opaque handles.
package glstate
