// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"github.com/gogpu/vkicd/hal"
	"github.com/gogpu/vkicd/internal/handle"
	"github.com/gogpu/vkicd/internal/objects"
	"github.com/gogpu/vkicd/vkabi"
)

// GfxCreateShaderModule implements vkCreateShaderModule. SPIR-V words pass
// through opaquely to the HAL - shader translation is hal/naga's concern
// (out of this core's scope per SPEC_FULL.md's domain stack section), not
// something this package parses or validates.
func GfxCreateShaderModule(dev vkabi.Device, info *vkabi.ShaderModuleCreateInfo) (vkabi.ShaderModule, vkabi.Result) {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	mod, err := gpu.HAL.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Source: hal.ShaderSource{SPIRV: info.Code},
	})
	if err != nil {
		return 0, resultFromHALError(err)
	}
	h := handle.MakeNonDispatchable(mod)
	return vkabi.ShaderModule(h), vkabi.Success
}

// GfxDestroyShaderModule implements vkDestroyShaderModule.
func GfxDestroyShaderModule(dev vkabi.Device, mod vkabi.ShaderModule) {
	if handle.IsNullNonDispatchable(uintptr(mod)) {
		return
	}
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	m := handle.ReleaseNonDispatchable[hal.ShaderModule](uintptr(mod))
	gpu.HAL.DestroyShaderModule(m)
}
