package glstate

import "fmt"

// SetTextureUnit makes unit the active texture unit. The driver call is
// issued only when the unit actually changes; selecting a non-zero unit
// on a single-unit driver fails with ErrMultitextureUnsupported.
func (c *Context) SetTextureUnit(unit int) error {
	c.guard.check()
	if !c.initialized {
		return ErrNotInitialized
	}
	if unit < 0 || unit >= len(c.state.textureUnits) {
		return fmt.Errorf("%w: %d", ErrInvalidTextureUnit, unit)
	}

	if unit != c.state.curTextureUnit {
		if len(c.state.textureUnits) == 1 {
			return ErrMultitextureUnsupported
		}
		c.driver.ActiveTexture(unit)
	}

	c.state.curTextureUnit = unit
	return nil
}

// TextureUnit returns the index of the active texture unit.
func (c *Context) TextureUnit() int { return c.state.curTextureUnit }

// TextureUnitCount returns the number of texture units, fixed at Init.
func (c *Context) TextureUnitCount() int { return len(c.state.textureUnits) }

// BindTexture binds tex to the active texture unit. The driver call is
// elided when the shadow already shows tex bound there.
func (c *Context) BindTexture(tex TextureID) {
	c.guard.check()
	if tex == c.state.textureUnits[c.state.curTextureUnit] {
		return
	}
	c.state.textureUnits[c.state.curTextureUnit] = tex
	c.driver.BindTexture(tex)
}

// BoundTexture returns the handle bound to the given unit, or NoTexture.
// It reports the shadow, which by invariant equals the driver state.
func (c *Context) BoundTexture(unit int) (TextureID, error) {
	if unit < 0 || unit >= len(c.state.textureUnits) {
		return NoTexture, fmt.Errorf("%w: %d", ErrInvalidTextureUnit, unit)
	}
	return c.state.textureUnits[unit], nil
}

// BindTextureToUnit binds tex to an arbitrary unit. With restorePrev set,
// the caller's notion of the active unit is preserved: the unit is
// switched, the bind issued, and the previous unit restored. The bind is
// elided entirely when the shadow already matches.
func (c *Context) BindTextureToUnit(tex TextureID, unit int, restorePrev bool) error {
	c.guard.check()
	if !c.initialized {
		return ErrNotInitialized
	}
	if unit < 0 || unit >= len(c.state.textureUnits) {
		return fmt.Errorf("%w: %d", ErrInvalidTextureUnit, unit)
	}

	if tex == c.state.textureUnits[unit] {
		return nil
	}

	prev := c.state.curTextureUnit
	if err := c.SetTextureUnit(unit); err != nil {
		return err
	}

	c.state.textureUnits[unit] = tex
	c.driver.BindTexture(tex)

	if restorePrev {
		return c.SetTextureUnit(prev)
	}
	return nil
}

// DeleteTexture deletes tex. The driver unbinds a deleted texture from
// every unit it was bound to, so the shadow mirrors that before the
// deletion is issued: all unit slots holding tex revert to NoTexture.
func (c *Context) DeleteTexture(tex TextureID) {
	c.guard.check()
	for i, bound := range c.state.textureUnits {
		if bound == tex {
			c.state.textureUnits[i] = NoTexture
		}
	}
	c.driver.DeleteTexture(tex)
}

// SetTextureFilter applies filtering to the texture bound on the active
// unit. Anisotropy is clamped to [1, max] when the feature is present and
// the applied value is returned; without the feature the request is
// ignored and 1.0 returned.
func (c *Context) SetTextureFilter(f TextureFilter) float32 {
	c.guard.check()
	c.driver.TexFilter(resolveMinFilter(f.Min, f.Mipmap), magFilter(f.Mag))

	if !c.features.AnisotropicFilter {
		return 1.0
	}
	aniso := f.Anisotropy
	if aniso < 1.0 {
		aniso = 1.0
	}
	if aniso > c.caps.maxAnisotropy {
		aniso = c.caps.maxAnisotropy
	}
	c.driver.TexAnisotropy(aniso)
	return aniso
}

// SetTextureWrap applies wrap modes to the texture bound on the active
// unit.
func (c *Context) SetTextureWrap(w TextureWrap) {
	c.guard.check()
	c.driver.TexWrap(w.S, w.T)
}

// resolveMinFilter combines the abstract min and mipmap modes into the
// driver's single min-filter enumerant.
func resolveMinFilter(minMode, mipmap FilterMode) MinFilter {
	if mipmap == FilterNone {
		if minMode == FilterNearest {
			return MinNearest
		}
		return MinLinear
	}
	switch {
	case minMode == FilterNearest && mipmap == FilterNearest:
		return MinNearestMipmapNearest
	case minMode == FilterNearest && mipmap == FilterLinear:
		return MinNearestMipmapLinear
	case minMode == FilterLinear && mipmap == FilterNearest:
		return MinLinearMipmapNearest
	case minMode == FilterLinear && mipmap == FilterLinear:
		return MinLinearMipmapLinear
	default:
		return MinLinear
	}
}

// magFilter narrows an abstract filter mode to the two the driver accepts
// for magnification.
func magFilter(mag FilterMode) FilterMode {
	if mag == FilterNearest {
		return FilterNearest
	}
	return FilterLinear
}

// createDefaultTexture creates the default texture: a repeating white
// pixel. Without it, sampling inside a shader while drawing untextured
// primitives would return black, forcing separate passthrough shaders for
// untextured versus textured draws.
func (c *Context) createDefaultTexture() {
	cur := c.state.textureUnits[c.state.curTextureUnit]

	c.state.defaultTexture = c.driver.CreateTexture()
	c.BindTexture(c.state.defaultTexture)

	c.driver.TexFilter(MinNearest, FilterNearest)
	c.driver.TexWrap(WrapRepeat, WrapRepeat)
	c.driver.TexImage2D(1, 1, []byte{255})

	c.BindTexture(cur)
}

// DefaultTexture returns the handle of the default texture created at
// Init. The handle is owned by the context and released in Close.
func (c *Context) DefaultTexture() TextureID { return c.state.defaultTexture }

// DefaultFBO returns the default framebuffer handle captured at Init,
// non-zero on some platforms.
func (c *Context) DefaultFBO() FramebufferID { return c.state.defaultFBO }

// UpdateTextureMemory adjusts the running texture memory total after a
// caller-side resize from oldSize to newSize bytes. The total is floored
// at zero.
func (c *Context) UpdateTextureMemory(oldSize, newSize uint64) {
	total := int64(c.stats.TextureMemory) + int64(newSize) - int64(oldSize)
	if total < 0 {
		total = 0
	}
	c.stats.TextureMemory = uint64(total)
}
