// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build darwin

package metal

import (
	"fmt"

	"github.com/gogpu/vkicd/hal"
)

// CreateCommandPool is not yet implemented for the metal backend; command
// buffer lifetime here still goes through CreateCommandEncoder.
func (d *Device) CreateCommandPool(_ *hal.CommandPoolDescriptor) (hal.CommandPool, error) {
	return nil, fmt.Errorf("metal: CreateCommandPool not implemented")
}

// DestroyCommandPool is a no-op until CreateCommandPool is implemented.
func (d *Device) DestroyCommandPool(_ hal.CommandPool) {}

// CreateRenderPass is not yet implemented for the metal backend.
func (d *Device) CreateRenderPass(_ *hal.RenderPassCreateDescriptor) (hal.RenderPass, error) {
	return nil, fmt.Errorf("metal: CreateRenderPass not implemented")
}

// DestroyRenderPass is a no-op until CreateRenderPass is implemented.
func (d *Device) DestroyRenderPass(_ hal.RenderPass) {}

// CreateFramebuffer is not yet implemented for the metal backend.
func (d *Device) CreateFramebuffer(_ *hal.FramebufferDescriptor) (hal.Framebuffer, error) {
	return nil, fmt.Errorf("metal: CreateFramebuffer not implemented")
}

// DestroyFramebuffer is a no-op until CreateFramebuffer is implemented.
func (d *Device) DestroyFramebuffer(_ hal.Framebuffer) {}

// CreateDescriptorPool is not yet implemented for the metal backend.
func (d *Device) CreateDescriptorPool(_ *hal.DescriptorPoolDescriptor) (hal.DescriptorPool, error) {
	return nil, fmt.Errorf("metal: CreateDescriptorPool not implemented")
}

// DestroyDescriptorPool is a no-op until CreateDescriptorPool is implemented.
func (d *Device) DestroyDescriptorPool(_ hal.DescriptorPool) {}
