// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package objects

import "github.com/gogpu/vkicd/hal"

// Swapchain owns the HAL surface and a fixed-size ring of image handles, per
// spec.md §3.3. The HAL here is WebGPU-flavored (hal.Surface.AcquireTexture
// hands back one texture per call, there is no "get all swapchain images"
// primitive) rather than the Vulkan model of a fixed, pre-enumerated image
// array - so this wrapper synthesizes the fixed array Vulkan expects: N
// image slots are allocated once at Create time (N = the requested minimum
// image count), and AcquireNextImage re-binds the slot at the current ring
// position to whatever HAL.AcquireTexture returns. Image *handles* are
// therefore stable for the swapchain's lifetime even though the HAL texture
// backing a given slot changes every frame, matching real-driver behavior
// where vkAcquireNextImageKHR returns a recycled index.
type Swapchain struct {
	Surface hal.Surface
	Images  []*Image // len == requested min image count, handles stable for life of swapchain

	// ImageHandles are the non-dispatchable VkImage handles the caller
	// registered for each slot in Images, in the same order - set once by
	// the caller right after construction, mirroring how CommandPool tracks
	// its allocated buffers' handles.
	ImageHandles []uintptr

	ring uint32

	// neutered is set when this swapchain was passed as oldSwapchain to a
	// subsequent vkCreateSwapchainKHR: its HAL surface has been reused by
	// the new swapchain (logically moved) and this wrapper may only be
	// destroyed, not used, per spec.md §3.3.
	neutered bool
}

// NewSwapchain wraps surf with a fixed ring of pre-allocated image slots.
// images is built by the caller (one NewSwapchainImage per VkImage handle
// it registers) so each slot is reachable both through Swapchain.Images and
// through its own non-dispatchable handle - AcquireNext mutates the Image
// in place, so both views stay in sync.
func NewSwapchain(surf hal.Surface, images []*Image) *Swapchain {
	return &Swapchain{Surface: surf, Images: images}
}

// NewSwapchainImage allocates an image slot considered pre-bound: Vulkan
// forbids calling vkBindImageMemory on a swapchain image, so unlike
// NewImage's Unbound default this starts Bound with no HAL texture until
// the first AcquireNext.
func NewSwapchainImage() *Image {
	return &Image{bound: true}
}

// Neuter takes this swapchain's HAL surface for reuse by a replacement
// swapchain created with this one as oldSwapchain. The wrapper remains a
// valid handle but is no longer usable for anything but Destroy.
func (s *Swapchain) Neuter() hal.Surface {
	surf := s.Surface
	s.Surface = nil
	s.neutered = true
	return surf
}

// IsNeutered reports whether this swapchain's HAL part has been taken by a
// successor swapchain.
func (s *Swapchain) IsNeutered() bool { return s.neutered }

// AcquireNext advances the ring and binds the next slot to the texture the
// HAL hands back, returning the Vulkan image index for that slot.
func (s *Swapchain) AcquireNext(fence hal.Fence) (imageIndex uint32, suboptimal bool, err error) {
	if s.neutered {
		panic("vkAcquireNextImageKHR: swapchain was replaced by a newer swapchain")
	}
	acquired, err := s.Surface.AcquireTexture(fence)
	if err != nil {
		return 0, false, err
	}
	idx := s.ring % uint32(len(s.Images))
	s.ring++
	s.Images[idx].HAL = acquired.Texture
	s.Images[idx].bound = true
	return idx, acquired.Suboptimal, nil
}
