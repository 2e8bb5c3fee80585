// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package convert

import (
	"github.com/gogpu/vkicd/vkabi"
)

// Swizzle is the HAL-side per-channel component mapping. hal's
// TextureViewDescriptor carries no such field - WebGPU has no concept of
// arbitrary channel remapping - so this lives purely in internal/convert and
// internal/objects to detect and reject the non-identity case explicitly
// rather than silently dropping it.
type Swizzle struct {
	R, G, B, A vkabi.ComponentSwizzle
}

// IsIdentity reports whether every channel reads its natural component,
// after resolving COMPONENT_SWIZZLE_IDENTITY per channel.
func (s Swizzle) IsIdentity() bool {
	r, g, b, a := s.R, s.G, s.B, s.A
	if r == vkabi.ComponentSwizzleIdentity {
		r = vkabi.ComponentSwizzleR
	}
	if g == vkabi.ComponentSwizzleIdentity {
		g = vkabi.ComponentSwizzleG
	}
	if b == vkabi.ComponentSwizzleIdentity {
		b = vkabi.ComponentSwizzleB
	}
	if a == vkabi.ComponentSwizzleIdentity {
		a = vkabi.ComponentSwizzleA
	}
	return r == vkabi.ComponentSwizzleR && g == vkabi.ComponentSwizzleG &&
		b == vkabi.ComponentSwizzleB && a == vkabi.ComponentSwizzleA
}

// SwizzleFromVulkan resolves IDENTITY per channel per the spec's swizzle
// identity rule: IDENTITY on channel c produces the natural channel c.
func SwizzleFromVulkan(m vkabi.ComponentMapping) Swizzle {
	resolve := func(c vkabi.ComponentSwizzle, natural vkabi.ComponentSwizzle) vkabi.ComponentSwizzle {
		if c == vkabi.ComponentSwizzleIdentity {
			return natural
		}
		return c
	}
	return Swizzle{
		R: resolve(m.R, vkabi.ComponentSwizzleR),
		G: resolve(m.G, vkabi.ComponentSwizzleG),
		B: resolve(m.B, vkabi.ComponentSwizzleB),
		A: resolve(m.A, vkabi.ComponentSwizzleA),
	}
}

// RequireIdentitySwizzle fails fast on any non-identity component mapping.
// The HAL underneath has no channel-remap facility; rather than silently
// ignoring the request (and producing a view that samples the wrong
// channels) this treats it as the explicit not-implemented path spec.md §7
// calls for.
func RequireIdentitySwizzle(s Swizzle) {
	if !s.IsIdentity() {
		fatal("RequireIdentitySwizzle", "non-identity component mapping %+v is not implemented by this HAL", s)
	}
}
