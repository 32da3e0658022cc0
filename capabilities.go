package glstate

import "strings"

// caps holds the probed capability maxima and classifications. Immutable
// after Init.
type caps struct {
	vendor           Vendor
	tier             PipelineTier
	maxAnisotropy    float32
	maxTextureSize   int
	maxRenderTargets int
}

// vendorSubstrings maps a vendor-string fragment to its category. Order
// matters: first match wins, so the more specific fragments come first.
var vendorSubstrings = []struct {
	substr string
	vendor Vendor
}{
	{"ATI Technologies", VendorAMD},
	{"AMD", VendorAMD},
	{"NVIDIA", VendorNVIDIA},
	{"Intel", VendorIntel},
	{"Mesa", VendorMesa},
	{"Apple Computer", VendorApple},
	{"Apple", VendorApple},
	{"Microsoft", VendorMicrosoft},
	{"Imagination", VendorImgTec},
	{"ARM", VendorARM},
	{"Qualcomm", VendorQualcomm},
	{"Broadcom", VendorBroadcom},
	{"Vivante", VendorVivante},
}

// classifyVendor resolves the free-form vendor identification string into
// a closed category. An empty or unrecognized string yields VendorUnknown.
func classifyVendor(s string) Vendor {
	if s == "" {
		return VendorUnknown
	}
	for _, v := range vendorSubstrings {
		if strings.Contains(s, v.substr) {
			return v.vendor
		}
	}
	return VendorUnknown
}

// pipelineTier derives the dispatch tier from the probed features. Generic
// attribute support marks the programmable tier; everything else falls
// back to fixed-function.
func pipelineTier(f Features) PipelineTier {
	if f.GenericAttribs {
		return TierProgrammable
	}
	return TierFixedFunction
}

// resolveAliases assigns extension entry points to the core slots when the
// core version is unavailable but the extension variant is. The core and
// ARB buffer-object functions are functionally identical, so after this
// runs the rest of the package only ever consults the core slots. Must run
// before any other component uses f.
func resolveAliases(f *Funcs) {
	if f == nil {
		return
	}
	if f.GenBuffers == nil && f.GenBuffersARB != nil {
		f.GenBuffers = f.GenBuffersARB
	}
	if f.BindBuffer == nil && f.BindBufferARB != nil {
		f.BindBuffer = f.BindBufferARB
	}
	if f.BufferData == nil && f.BufferDataARB != nil {
		f.BufferData = f.BufferDataARB
	}
	if f.BufferSubData == nil && f.BufferSubDataARB != nil {
		f.BufferSubData = f.BufferSubDataARB
	}
	if f.DeleteBuffers == nil && f.DeleteBuffersARB != nil {
		f.DeleteBuffers = f.DeleteBuffersARB
	}
}

// initMaxValues queries the capability ceilings. Anisotropy clamps to 1.0
// when the extension is absent; the render-target maximum is the smaller
// of color attachments and draw buffers, and zero when either framebuffer
// or multiple-draw-buffer support is missing.
func (c *Context) initMaxValues() {
	f := c.features

	if f.AnisotropicFilter {
		c.caps.maxAnisotropy = c.driver.GetFloat(ParamMaxAnisotropy)
	} else {
		c.caps.maxAnisotropy = 1.0
	}

	c.caps.maxTextureSize = c.driver.GetInt(ParamMaxTextureSize)

	if f.Framebuffers && f.DrawBuffers {
		c.caps.maxRenderTargets = min(
			c.driver.GetInt(ParamMaxColorAttachments),
			c.driver.GetInt(ParamMaxDrawBuffers),
		)
	} else {
		c.caps.maxRenderTargets = 0
	}
}

// MaxTextureSize returns the largest texture dimension the driver accepts.
func (c *Context) MaxTextureSize() int { return c.caps.maxTextureSize }

// MaxRenderTargets returns the number of simultaneous render targets, or
// zero when render-target functionality is unsupported.
func (c *Context) MaxRenderTargets() int { return c.caps.maxRenderTargets }

// MaxAnisotropy returns the anisotropic filtering ceiling, 1.0 when the
// feature is unsupported.
func (c *Context) MaxAnisotropy() float32 { return c.caps.maxAnisotropy }

// Vendor returns the classified driver vendor.
func (c *Context) Vendor() Vendor { return c.caps.vendor }

// Tier returns the pipeline tier resolved at Init.
func (c *Context) Tier() PipelineTier { return c.caps.tier }
