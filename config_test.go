// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package apphost

import (
	"strings"
	"testing"

	"github.com/gogpu/apphost/gpu"
	"github.com/gogpu/apphost/gpu/headless"
)

func TestConfigDefaults(t *testing.T) {
	c := Config{}.withDefaults()

	if c.Width != 800 || c.Height != 600 {
		t.Errorf("default size = %dx%d, want 800x600", c.Width, c.Height)
	}
	if c.DisplayRefreshRate != 60 {
		t.Errorf("default refresh rate = %d, want 60", c.DisplayRefreshRate)
	}
	if c.InputRate != 240 {
		t.Errorf("default input rate = %d, want 240", c.InputRate)
	}
}

func TestConfigDefaultsKeepExplicitValues(t *testing.T) {
	c := Config{Width: 1920, Height: 1080, DisplayRefreshRate: 144, InputRate: 500}.withDefaults()

	if c.Width != 1920 || c.Height != 1080 {
		t.Errorf("size = %dx%d, want explicit 1920x1080", c.Width, c.Height)
	}
	if c.DisplayRefreshRate != 144 {
		t.Errorf("refresh rate = %d, want explicit 144", c.DisplayRefreshRate)
	}
	if c.InputRate != 500 {
		t.Errorf("input rate = %d, want explicit 500", c.InputRate)
	}
}

func TestSelectBackendExplicitOverride(t *testing.T) {
	t.Setenv("APPHOST_BACKEND", "ignored-when-explicit")

	b := headless.New()
	got := selectBackend(&Config{Backend: b})
	if got != b {
		t.Errorf("selectBackend() = %v, want the explicit instance", got)
	}
}

func TestSelectBackendFromEnvironment(t *testing.T) {
	t.Setenv("APPHOST_BACKEND", gpu.BackendHeadless)

	b := selectBackend(&Config{})
	if b == nil {
		t.Fatal("selectBackend() = nil for a registered name")
	}
	if got := b.Name(); got != gpu.BackendHeadless {
		t.Errorf("backend name = %q, want %q", got, gpu.BackendHeadless)
	}
}

func TestSelectBackendRegistryDefault(t *testing.T) {
	t.Setenv("APPHOST_BACKEND", "")

	b := selectBackend(&Config{})
	if b == nil {
		t.Fatal("selectBackend() = nil with a registered backend available")
	}
}

func TestSelectBackendUnrecognizedNameIsFatal(t *testing.T) {
	t.Setenv("APPHOST_BACKEND", "no-such-backend")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("selectBackend() did not panic for an unrecognized name")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "no-such-backend") {
			t.Errorf("panic = %v, want diagnostic naming the bad backend", r)
		}
	}()
	selectBackend(&Config{})
}
