package gldriver

import (
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/gogpu/glstate"
)

// EnableDebugOutput installs a driver debug-message callback that
// forwards to the glstate package logger at debug level. It reports false
// when the driver does not expose the debug-output extension. The
// callback stays installed for the lifetime of the context.
func (d *Driver) EnableDebugOutput() bool {
	if !d.exts.has("GL_KHR_debug") && !d.exts.has("GL_ARB_debug_output") {
		return false
	}

	gl.Enable(gl.DEBUG_OUTPUT)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		glstate.Logger().Debug("gldriver: debug message",
			"source", debugSourceString(source),
			"type", debugTypeString(gltype),
			"severity", debugSeverityString(severity),
			"id", id,
			"message", message,
		)
	}, nil)
	return true
}

// debugSeverityString translates a driver debug-message severity
// enumerant into a short label.
func debugSeverityString(severity uint32) string {
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		return "high"
	case gl.DEBUG_SEVERITY_MEDIUM:
		return "medium"
	case gl.DEBUG_SEVERITY_LOW:
		return "low"
	case gl.DEBUG_SEVERITY_NOTIFICATION:
		return "notification"
	}
	return "unknown"
}

// debugSourceString translates a driver debug-message source enumerant
// into a short label.
func debugSourceString(source uint32) string {
	switch source {
	case gl.DEBUG_SOURCE_API:
		return "API"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		return "window"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		return "shader"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		return "external"
	case gl.DEBUG_SOURCE_APPLICATION:
		return "application"
	case gl.DEBUG_SOURCE_OTHER:
		return "other"
	}
	return "unknown"
}

// debugTypeString translates a driver debug-message type enumerant into a
// short label.
func debugTypeString(gltype uint32) string {
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		return "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return "deprecated behavior"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return "undefined behavior"
	case gl.DEBUG_TYPE_PERFORMANCE:
		return "performance"
	case gl.DEBUG_TYPE_PORTABILITY:
		return "portability"
	case gl.DEBUG_TYPE_OTHER:
		return "other"
	}
	return "unknown"
}
