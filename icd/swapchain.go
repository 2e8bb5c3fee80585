// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"github.com/gogpu/vkicd/hal"
	"github.com/gogpu/vkicd/internal/convert"
	"github.com/gogpu/vkicd/internal/handle"
	"github.com/gogpu/vkicd/internal/objects"
	"github.com/gogpu/vkicd/vkabi"
)

// GfxCreateSurfaceKHR implements the platform vkCreate*SurfaceKHR entry
// points (vkCreateWin32SurfaceKHR, vkCreateXcbSurfaceKHR,
// vkCreateMacOSSurfaceMVK, vkCreateMetalSurfaceEXT, ...): every one of them
// hands the loader's platform-specific display/window handles straight
// through to hal.Instance.CreateSurface with no per-platform logic on this
// side, so they all route through one core function - the cgo shim picks
// which C entry point calls it based on which header declared the struct.
func GfxCreateSurfaceKHR(inst vkabi.Instance, displayHandle, windowHandle uintptr) (vkabi.SurfaceKHR, vkabi.Result) {
	obj := handle.DerefDispatchable[objects.Instance](uintptr(inst))
	surf, err := obj.HAL.CreateSurface(displayHandle, windowHandle)
	if err != nil {
		return 0, resultFromHALError(err)
	}
	h := handle.MakeNonDispatchable(surf)
	return vkabi.SurfaceKHR(h), vkabi.Success
}

// GfxDestroySurfaceKHR implements vkDestroySurfaceKHR.
func GfxDestroySurfaceKHR(surf vkabi.SurfaceKHR) {
	if handle.IsNullNonDispatchable(uintptr(surf)) {
		return
	}
	s := handle.ReleaseNonDispatchable[hal.Surface](uintptr(surf))
	s.Destroy()
}

// GfxGetPhysicalDeviceSurfaceSupportKHR implements
// vkGetPhysicalDeviceSurfaceSupportKHR. The HAL has no dedicated per-family
// support query (spec.md §6.3's Surface::supports_queue_family); since this
// core only ever reports one queue family, support reduces to whether the
// adapter is compatible with the surface at all.
func GfxGetPhysicalDeviceSurfaceSupportKHR(pd vkabi.PhysicalDevice, queueFamilyIndex uint32, surf vkabi.SurfaceKHR) (bool, vkabi.Result) {
	a := handle.DerefDispatchable[objects.Adapter](uintptr(pd))
	if queueFamilyIndex != objects.QueueFamilyIndex {
		fatalf("vkGetPhysicalDeviceSurfaceSupportKHR", "queue family %d does not exist", queueFamilyIndex)
	}
	s := *handle.DerefNonDispatchable[hal.Surface](uintptr(surf))
	return a.HAL.SurfaceCapabilities(s) != nil, vkabi.Success
}

// GfxGetPhysicalDeviceSurfaceCapabilitiesKHR implements
// vkGetPhysicalDeviceSurfaceCapabilitiesKHR. hal.SurfaceCapabilities only
// carries the format/present-mode/alpha-mode lists a surface supports, not
// the extent/image-count bounds VkSurfaceCapabilitiesKHR needs, since the
// underlying WebGPU-flavored HAL leaves sizing entirely up to Configure -
// this core synthesizes the rest with the values a thin portability shim
// over a windowing-system-driven surface would report: size tracks the
// window (the 0xFFFFFFFF sentinel Vulkan defines for "surface size is
// determined by the swapchain targeting it"), one mandatory array layer,
// an identity transform, and no hard cap on image count.
func GfxGetPhysicalDeviceSurfaceCapabilitiesKHR(pd vkabi.PhysicalDevice, surf vkabi.SurfaceKHR) (vkabi.SurfaceCapabilitiesKHR, vkabi.Result) {
	a := handle.DerefDispatchable[objects.Adapter](uintptr(pd))
	s := *handle.DerefNonDispatchable[hal.Surface](uintptr(surf))
	caps := a.HAL.SurfaceCapabilities(s)
	if caps == nil {
		return vkabi.SurfaceCapabilitiesKHR{}, vkabi.ErrorSurfaceLostKHR
	}

	undefinedExtent := vkabi.Extent2D{Width: 0xFFFFFFFF, Height: 0xFFFFFFFF}
	return vkabi.SurfaceCapabilitiesKHR{
		MinImageCount:           2,
		MaxImageCount:           0,
		CurrentExtent:           undefinedExtent,
		MinImageExtent:          vkabi.Extent2D{Width: 1, Height: 1},
		MaxImageExtent:          vkabi.Extent2D{Width: 16384, Height: 16384},
		MaxImageArrayLayers:     1,
		SupportedTransforms:     vkabi.SurfaceTransformIdentityKHR,
		CurrentTransform:        vkabi.SurfaceTransformIdentityKHR,
		SupportedCompositeAlpha: supportedCompositeAlphaFrom(caps),
		SupportedUsageFlags:     vkabi.ImageUsageColorAttachment | vkabi.ImageUsageTransferDst | vkabi.ImageUsageTransferSrc,
	}, vkabi.Success
}

func supportedCompositeAlphaFrom(caps *hal.SurfaceCapabilities) vkabi.CompositeAlphaFlagsKHR {
	var out vkabi.CompositeAlphaFlagsKHR
	for _, m := range caps.AlphaModes {
		out |= compositeAlphaToVulkan(m)
	}
	return out
}

// GfxGetPhysicalDeviceSurfaceFormatsKHR implements
// vkGetPhysicalDeviceSurfaceFormatsKHR, two-phase per spec.md §4.6's note
// that the count-then-data protocol covers every Enumerate*/Get*Properties*
// entry point.
func GfxGetPhysicalDeviceSurfaceFormatsKHR(pd vkabi.PhysicalDevice, surf vkabi.SurfaceKHR, out []vkabi.SurfaceFormatKHR) ([]vkabi.SurfaceFormatKHR, vkabi.Result) {
	a := handle.DerefDispatchable[objects.Adapter](uintptr(pd))
	s := *handle.DerefNonDispatchable[hal.Surface](uintptr(surf))
	caps := a.HAL.SurfaceCapabilities(s)
	if caps == nil {
		return nil, vkabi.ErrorSurfaceLostKHR
	}

	all := make([]vkabi.SurfaceFormatKHR, len(caps.Formats))
	for i, f := range caps.Formats {
		all[i] = vkabi.SurfaceFormatKHR{Format: convert.FormatToVulkan(f), ColorSpace: vkabi.ColorSpaceSRGBNonlinearKHR}
	}
	if out == nil {
		return all, vkabi.Success
	}
	n := copy(out, all)
	if n < len(all) {
		return out[:n], vkabi.Incomplete
	}
	return out[:n], vkabi.Success
}

// GfxGetPhysicalDeviceSurfacePresentModesKHR implements
// vkGetPhysicalDeviceSurfacePresentModesKHR, same two-phase shape as
// GfxGetPhysicalDeviceSurfaceFormatsKHR.
func GfxGetPhysicalDeviceSurfacePresentModesKHR(pd vkabi.PhysicalDevice, surf vkabi.SurfaceKHR, out []vkabi.PresentModeKHR) ([]vkabi.PresentModeKHR, vkabi.Result) {
	a := handle.DerefDispatchable[objects.Adapter](uintptr(pd))
	s := *handle.DerefNonDispatchable[hal.Surface](uintptr(surf))
	caps := a.HAL.SurfaceCapabilities(s)
	if caps == nil {
		return nil, vkabi.ErrorSurfaceLostKHR
	}

	all := make([]vkabi.PresentModeKHR, len(caps.PresentModes))
	for i, m := range caps.PresentModes {
		all[i] = presentModeToVulkan(m)
	}
	if out == nil {
		return all, vkabi.Success
	}
	n := copy(out, all)
	if n < len(all) {
		return out[:n], vkabi.Incomplete
	}
	return out[:n], vkabi.Success
}

func presentModeFromVulkan(m vkabi.PresentModeKHR) hal.PresentMode {
	switch m {
	case vkabi.PresentModeMailboxKHR:
		return hal.PresentModeMailbox
	case vkabi.PresentModeFifoRelaxedKHR:
		return hal.PresentModeFifoRelaxed
	case vkabi.PresentModeImmediateKHR:
		return hal.PresentModeImmediate
	default:
		return hal.PresentModeFifo
	}
}

func presentModeToVulkan(m hal.PresentMode) vkabi.PresentModeKHR {
	switch m {
	case hal.PresentModeMailbox:
		return vkabi.PresentModeMailboxKHR
	case hal.PresentModeFifoRelaxed:
		return vkabi.PresentModeFifoRelaxedKHR
	case hal.PresentModeImmediate:
		return vkabi.PresentModeImmediateKHR
	default:
		return vkabi.PresentModeFifoKHR
	}
}

func compositeAlphaFromVulkan(a vkabi.CompositeAlphaFlagsKHR) hal.CompositeAlphaMode {
	switch {
	case a&vkabi.CompositeAlphaPreMultipliedKHR != 0:
		return hal.CompositeAlphaModePremultiplied
	case a&vkabi.CompositeAlphaPostMultipliedKHR != 0:
		return hal.CompositeAlphaModeUnpremultiplied
	case a&vkabi.CompositeAlphaInheritKHR != 0:
		return hal.CompositeAlphaModeInherit
	default:
		return hal.CompositeAlphaModeOpaque
	}
}

func compositeAlphaToVulkan(a hal.CompositeAlphaMode) vkabi.CompositeAlphaFlagsKHR {
	switch a {
	case hal.CompositeAlphaModePremultiplied:
		return vkabi.CompositeAlphaPreMultipliedKHR
	case hal.CompositeAlphaModeUnpremultiplied:
		return vkabi.CompositeAlphaPostMultipliedKHR
	case hal.CompositeAlphaModeInherit:
		return vkabi.CompositeAlphaInheritKHR
	default:
		return vkabi.CompositeAlphaOpaqueKHR
	}
}

// GfxCreateSwapchainKHR implements vkCreateSwapchainKHR per spec.md §4.6:
// configure the HAL surface from the Vulkan create info and wrap
// MinImageCount fresh image slots, each with its own registered VkImage
// handle so vkGetSwapchainImagesKHR can hand them back later. OldSwapchain,
// when given, is neutered (its HAL surface considered moved) rather than
// reused directly - the new swapchain always configures the VkSurfaceKHR
// named in info.Surface, which is the same surface object in the resize
// case the Vulkan contract requires.
func GfxCreateSwapchainKHR(dev vkabi.Device, info *vkabi.SwapchainCreateInfoKHR) (vkabi.SwapchainKHR, vkabi.Result) {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	if info.ImageSharingMode != vkabi.SharingModeExclusive {
		fatalf("vkCreateSwapchainKHR", "non-exclusive image sharing mode is not supported")
	}
	surf := *handle.DerefNonDispatchable[hal.Surface](uintptr(info.Surface))

	cfg := &hal.SurfaceConfiguration{
		Width:       info.ImageExtent.Width,
		Height:      info.ImageExtent.Height,
		Format:      convert.FormatFromVulkan(info.ImageFormat),
		Usage:       convert.ImageUsageFromVulkan(info.ImageUsage),
		PresentMode: presentModeFromVulkan(info.PresentMode),
		AlphaMode:   compositeAlphaFromVulkan(info.CompositeAlpha),
	}
	if err := surf.Configure(gpu.HAL, cfg); err != nil {
		return 0, resultFromHALError(err)
	}

	if !handle.IsNullNonDispatchable(uintptr(info.OldSwapchain)) {
		handle.DerefNonDispatchable[objects.Swapchain](uintptr(info.OldSwapchain)).Neuter()
	}

	count := info.MinImageCount
	if count == 0 {
		count = 1
	}
	images := make([]*objects.Image, count)
	imageHandles := make([]uintptr, count)
	for i := range images {
		h := handle.MakeNonDispatchable(*objects.NewSwapchainImage())
		images[i] = handle.DerefNonDispatchable[objects.Image](h)
		imageHandles[i] = h
	}

	sc := objects.NewSwapchain(surf, images)
	sc.ImageHandles = imageHandles
	h := handle.MakeNonDispatchable(*sc)
	return vkabi.SwapchainKHR(h), vkabi.Success
}

// GfxDestroySwapchainKHR implements vkDestroySwapchainKHR. A neutered
// swapchain's Surface is already nil (taken by its successor), so
// Unconfigure/Destroy only run against a still-live one.
func GfxDestroySwapchainKHR(dev vkabi.Device, swap vkabi.SwapchainKHR) {
	if handle.IsNullNonDispatchable(uintptr(swap)) {
		return
	}
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	sc := handle.ReleaseNonDispatchable[objects.Swapchain](uintptr(swap))

	for _, h := range sc.ImageHandles {
		handle.ReleaseNonDispatchable[objects.Image](h)
	}
	if sc.Surface != nil {
		sc.Surface.Unconfigure(gpu.HAL)
	}
}

// GfxGetSwapchainImagesKHR implements vkGetSwapchainImagesKHR, two-phase
// per spec.md §4.6.
func GfxGetSwapchainImagesKHR(swap vkabi.SwapchainKHR, out []vkabi.Image) ([]vkabi.Image, vkabi.Result) {
	sc := handle.DerefNonDispatchable[objects.Swapchain](uintptr(swap))
	all := make([]vkabi.Image, len(sc.ImageHandles))
	for i, h := range sc.ImageHandles {
		all[i] = vkabi.Image(h)
	}
	if out == nil {
		return all, vkabi.Success
	}
	n := copy(out, all)
	if n < len(all) {
		return out[:n], vkabi.Incomplete
	}
	return out[:n], vkabi.Success
}

// GfxAcquireNextImageKHR implements vkAcquireNextImageKHR per spec.md
// §4.6: the caller supplies exactly one of semaphore/fence as the frame's
// sync object; this core picks whichever is non-null and hands its HAL
// fence to the swapchain.
func GfxAcquireNextImageKHR(swap vkabi.SwapchainKHR, semaphore vkabi.Semaphore, fence vkabi.Fence) (uint32, vkabi.Result) {
	sc := handle.DerefNonDispatchable[objects.Swapchain](uintptr(swap))

	var halFence hal.Fence
	switch {
	case !handle.IsNullNonDispatchable(uintptr(fence)):
		halFence = handle.DerefNonDispatchable[objects.Sync](uintptr(fence)).HAL
	case !handle.IsNullNonDispatchable(uintptr(semaphore)):
		halFence = handle.DerefNonDispatchable[objects.Sync](uintptr(semaphore)).HAL
	default:
		fatalf("vkAcquireNextImageKHR", "either semaphore or fence must be non-null")
	}

	idx, suboptimal, err := sc.AcquireNext(halFence)
	if err != nil {
		return 0, resultFromHALError(err)
	}
	if !handle.IsNullNonDispatchable(uintptr(fence)) {
		handle.DerefNonDispatchable[objects.Sync](uintptr(fence)).Signaled = true
	}
	if suboptimal {
		return idx, vkabi.SuboptimalKHR
	}
	return idx, vkabi.Success
}
