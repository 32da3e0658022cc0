package glstate

import "unsafe"

// Vertex attribute streams
//
// A small closed set of semantic roles maps onto two mutually exclusive
// driver mechanisms: generic numbered attributes on the programmable tier
// and named client arrays on the legacy tier. The tier is resolved once
// at Init; every call here branches on it and nothing else.

// clientState maps a semantic role to its legacy client-array enumerant.
func clientState(attrib VertexAttrib) (ClientState, bool) {
	switch attrib {
	case AttribPosition:
		return ClientStateVertex, true
	case AttribTexCoord:
		return ClientStateTexCoord, true
	case AttribColor:
		return ClientStateColor, true
	default:
		return 0, false
	}
}

// EnableVertexAttrib enables the vertex data stream for the given role.
func (c *Context) EnableVertexAttrib(attrib VertexAttrib) {
	c.guard.check()
	if c.caps.tier == TierProgrammable {
		c.driver.EnableVertexAttribArray(attrib)
		return
	}
	if cs, ok := clientState(attrib); ok {
		c.driver.EnableClientState(cs)
	}
}

// DisableVertexAttrib disables the vertex data stream for the given role.
func (c *Context) DisableVertexAttrib(attrib VertexAttrib) {
	c.guard.check()
	if c.caps.tier == TierProgrammable {
		c.driver.DisableVertexAttribArray(attrib)
		return
	}
	if cs, ok := clientState(attrib); ok {
		c.driver.DisableClientState(cs)
	}
}

// VertexAttribPointer describes the vertex data stream for the given
// role: size components of typ every stride bytes starting at pointer.
//
// On the programmable tier, unsigned byte data is normalized to the unit
// range so 8-bit colors arrive as [0,1] in the shader; the legacy client
// arrays normalize per role on their own. Unknown roles are ignored on
// the legacy tier, which has no named array for them.
func (c *Context) VertexAttribPointer(attrib VertexAttrib, size int, typ DataType, stride int, pointer unsafe.Pointer) {
	c.guard.check()
	if c.caps.tier == TierProgrammable {
		normalized := typ == TypeUnsignedByte
		c.driver.VertexAttribPointer(attrib, size, typ, normalized, stride, pointer)
		return
	}

	switch attrib {
	case AttribPosition:
		c.driver.VertexPointer(size, typ, stride, pointer)
	case AttribTexCoord:
		c.driver.TexCoordPointer(size, typ, stride, pointer)
	case AttribColor:
		c.driver.ColorPointer(size, typ, stride, pointer)
	}
}
