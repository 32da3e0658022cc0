package glstate

import "testing"

func TestClassifyVendor(t *testing.T) {
	tests := []struct {
		in   string
		want Vendor
	}{
		{"NVIDIA Corporation", VendorNVIDIA},
		{"ATI Technologies Inc.", VendorAMD},
		{"Advanced Micro Devices, AMD", VendorAMD},
		{"Intel Open Source Technology Center", VendorIntel},
		{"Mesa/X.org", VendorMesa},
		{"Apple Computer, Inc.", VendorApple},
		{"Apple", VendorApple},
		{"Microsoft Corporation", VendorMicrosoft},
		{"Imagination Technologies", VendorImgTec},
		{"ARM", VendorARM},
		{"Qualcomm", VendorQualcomm},
		{"Broadcom", VendorBroadcom},
		{"Vivante Corporation", VendorVivante},
		{"unknown driver xyz", VendorUnknown},
		{"", VendorUnknown},
	}

	for _, tt := range tests {
		if got := classifyVendor(tt.in); got != tt.want {
			t.Errorf("classifyVendor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPipelineTier(t *testing.T) {
	if got := pipelineTier(Features{GenericAttribs: true}); got != TierProgrammable {
		t.Errorf("pipelineTier with generic attribs = %v, want TierProgrammable", got)
	}
	if got := pipelineTier(Features{FixedFunction: true}); got != TierFixedFunction {
		t.Errorf("pipelineTier without generic attribs = %v, want TierFixedFunction", got)
	}
}

func TestResolveAliases(t *testing.T) {
	var arbGen, arbBind int
	f := &Funcs{
		GenBuffersARB:    func(n int) []uint32 { arbGen++; return make([]uint32, n) },
		BindBufferARB:    func(target, buffer uint32) { arbBind++ },
		BufferDataARB:    func(target uint32, data []byte, usage uint32) {},
		DeleteBuffersARB: func(buffers []uint32) {},
	}

	resolveAliases(f)

	if f.GenBuffers == nil || f.BindBuffer == nil || f.BufferData == nil || f.DeleteBuffers == nil {
		t.Fatal("core slots not filled from extension variants")
	}
	f.GenBuffers(1)
	f.BindBuffer(0, 0)
	if arbGen != 1 || arbBind != 1 {
		t.Errorf("aliased slots not routed to extension entry points: gen %d, bind %d", arbGen, arbBind)
	}
	// No extension variant available: slot stays nil.
	if f.BufferSubData != nil {
		t.Error("BufferSubData filled without a source")
	}
}

func TestResolveAliases_CorePreserved(t *testing.T) {
	var core, ext int
	f := &Funcs{
		GenBuffers:    func(n int) []uint32 { core++; return make([]uint32, n) },
		GenBuffersARB: func(n int) []uint32 { ext++; return make([]uint32, n) },
	}
	resolveAliases(f)
	f.GenBuffers(1)
	if core != 1 || ext != 0 {
		t.Errorf("entry point calls = core %d, ext %d; want 1, 0", core, ext)
	}
}

func TestInitMaxValues(t *testing.T) {
	t.Run("render targets take the smaller limit", func(t *testing.T) {
		d := newFakeDriver()
		d.ints[ParamMaxColorAttachments] = 8
		d.ints[ParamMaxDrawBuffers] = 4
		c := newInitContext(t, d)
		if got := c.MaxRenderTargets(); got != 4 {
			t.Errorf("MaxRenderTargets() = %d, want 4", got)
		}
	})

	t.Run("no framebuffer support means zero targets", func(t *testing.T) {
		d := newLegacyFakeDriver()
		c := newInitContext(t, d)
		if got := c.MaxRenderTargets(); got != 0 {
			t.Errorf("MaxRenderTargets() = %d, want 0", got)
		}
	})

	t.Run("anisotropy floors at one without the extension", func(t *testing.T) {
		d := newLegacyFakeDriver()
		c := newInitContext(t, d)
		if got := c.MaxAnisotropy(); got != 1 {
			t.Errorf("MaxAnisotropy() = %v, want 1", got)
		}
	})

	t.Run("texture size queried", func(t *testing.T) {
		d := newFakeDriver()
		d.ints[ParamMaxTextureSize] = 16384
		c := newInitContext(t, d)
		if got := c.MaxTextureSize(); got != 16384 {
			t.Errorf("MaxTextureSize() = %d, want 16384", got)
		}
	})
}

func TestContext_Tier(t *testing.T) {
	if c := newInitContext(t, newFakeDriver()); c.Tier() != TierProgrammable {
		t.Errorf("Tier() = %v, want TierProgrammable", c.Tier())
	}
	if c := newInitContext(t, newLegacyFakeDriver()); c.Tier() != TierFixedFunction {
		t.Errorf("Tier() = %v, want TierFixedFunction", c.Tier())
	}
}

func TestContext_VendorClassifiedAtInit(t *testing.T) {
	d := newFakeDriver()
	d.vendor = "NVIDIA Corporation"
	c := newInitContext(t, d)
	if got := c.Vendor(); got != VendorNVIDIA {
		t.Errorf("Vendor() = %v, want VendorNVIDIA", got)
	}
}
