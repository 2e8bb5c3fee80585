// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"testing"

	"github.com/gogpu/vkicd/vkabi"
)

func createTestSurface(t *testing.T, inst vkabi.Instance) vkabi.SurfaceKHR {
	t.Helper()
	surf, res := GfxCreateSurfaceKHR(inst, 0, 0)
	if res != vkabi.Success {
		t.Fatalf("GfxCreateSurfaceKHR: %v", res)
	}
	return surf
}

func TestSurfaceCreateDestroyAndCapabilities(t *testing.T) {
	inst := newTestInstance(t)
	pd := firstPhysicalDevice(t, inst)
	surf := createTestSurface(t, inst)
	defer GfxDestroySurfaceKHR(surf)

	supported, res := GfxGetPhysicalDeviceSurfaceSupportKHR(pd, 0, surf)
	if res != vkabi.Success {
		t.Fatalf("GfxGetPhysicalDeviceSurfaceSupportKHR: %v", res)
	}
	if !supported {
		t.Fatal("GfxGetPhysicalDeviceSurfaceSupportKHR = false, want true against the noop adapter")
	}

	caps, res := GfxGetPhysicalDeviceSurfaceCapabilitiesKHR(pd, surf)
	if res != vkabi.Success {
		t.Fatalf("GfxGetPhysicalDeviceSurfaceCapabilitiesKHR: %v", res)
	}
	if caps.MinImageCount < 1 {
		t.Errorf("MinImageCount = %d, want >= 1", caps.MinImageCount)
	}
	if caps.MaxImageArrayLayers != 1 {
		t.Errorf("MaxImageArrayLayers = %d, want 1", caps.MaxImageArrayLayers)
	}

	formats, res := GfxGetPhysicalDeviceSurfaceFormatsKHR(pd, surf, nil)
	if res != vkabi.Success {
		t.Fatalf("GfxGetPhysicalDeviceSurfaceFormatsKHR (count): %v", res)
	}
	if len(formats) == 0 {
		t.Fatal("GfxGetPhysicalDeviceSurfaceFormatsKHR reported zero formats")
	}

	modes, res := GfxGetPhysicalDeviceSurfacePresentModesKHR(pd, surf, nil)
	if res != vkabi.Success {
		t.Fatalf("GfxGetPhysicalDeviceSurfacePresentModesKHR: %v", res)
	}
	if len(modes) == 0 {
		t.Fatal("GfxGetPhysicalDeviceSurfacePresentModesKHR reported zero present modes")
	}
}

func TestSwapchainCreateDestroyAndImages(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	inst := newTestInstance(t)
	surf := createTestSurface(t, inst)
	defer GfxDestroySurfaceKHR(surf)

	formats, _ := GfxGetPhysicalDeviceSurfaceFormatsKHR(firstPhysicalDevice(t, inst), surf, nil)
	format := formats[0].Format

	swap, res := GfxCreateSwapchainKHR(dev, &vkabi.SwapchainCreateInfoKHR{
		Surface:          surf,
		MinImageCount:    2,
		ImageFormat:      format,
		ImageColorSpace:  vkabi.ColorSpaceSRGBNonlinearKHR,
		ImageExtent:      vkabi.Extent2D{Width: 800, Height: 600},
		ImageArrayLayers: 1,
		ImageUsage:       vkabi.ImageUsageColorAttachment,
		ImageSharingMode: vkabi.SharingModeExclusive,
		PresentMode:      vkabi.PresentModeFifoKHR,
		CompositeAlpha:   vkabi.CompositeAlphaOpaqueKHR,
	})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateSwapchainKHR: %v", res)
	}
	defer GfxDestroySwapchainKHR(dev, swap)

	count, res := GfxGetSwapchainImagesKHR(swap, nil)
	if res != vkabi.Success {
		t.Fatalf("GfxGetSwapchainImagesKHR (count): %v", res)
	}
	if len(count) != 2 {
		t.Fatalf("len(count) = %d, want 2 (MinImageCount)", len(count))
	}

	short, res := GfxGetSwapchainImagesKHR(swap, make([]vkabi.Image, 1))
	if res != vkabi.Incomplete {
		t.Fatalf("short GfxGetSwapchainImagesKHR result = %v, want Incomplete", res)
	}
	if len(short) != 1 {
		t.Fatalf("len(short) = %d, want 1", len(short))
	}
}

func TestSwapchainNonExclusiveSharingModeRejected(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	inst := newTestInstance(t)
	surf := createTestSurface(t, inst)
	defer GfxDestroySurfaceKHR(surf)

	expectPanic(t, "concurrent sharing mode has no HAL equivalent for swapchain images", func() {
		GfxCreateSwapchainKHR(dev, &vkabi.SwapchainCreateInfoKHR{
			Surface:          surf,
			MinImageCount:    1,
			ImageFormat:      vkabi.FormatR8G8B8A8Unorm,
			ImageExtent:      vkabi.Extent2D{Width: 64, Height: 64},
			ImageArrayLayers: 1,
			ImageUsage:       vkabi.ImageUsageColorAttachment,
			ImageSharingMode: vkabi.SharingModeConcurrent,
		})
	})
}

func TestAcquireNextImageRequiresSemaphoreOrFence(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	inst := newTestInstance(t)
	surf := createTestSurface(t, inst)
	defer GfxDestroySurfaceKHR(surf)

	swap, res := GfxCreateSwapchainKHR(dev, &vkabi.SwapchainCreateInfoKHR{
		Surface:          surf,
		MinImageCount:    2,
		ImageFormat:      vkabi.FormatR8G8B8A8Unorm,
		ImageExtent:      vkabi.Extent2D{Width: 64, Height: 64},
		ImageArrayLayers: 1,
		ImageUsage:       vkabi.ImageUsageColorAttachment,
		ImageSharingMode: vkabi.SharingModeExclusive,
	})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateSwapchainKHR: %v", res)
	}
	defer GfxDestroySwapchainKHR(dev, swap)

	expectPanic(t, "vkAcquireNextImageKHR with neither semaphore nor fence set", func() {
		GfxAcquireNextImageKHR(swap, 0, 0)
	})
}

func TestAcquireNextImageSignalsFence(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	inst := newTestInstance(t)
	surf := createTestSurface(t, inst)
	defer GfxDestroySurfaceKHR(surf)

	swap, res := GfxCreateSwapchainKHR(dev, &vkabi.SwapchainCreateInfoKHR{
		Surface:          surf,
		MinImageCount:    2,
		ImageFormat:      vkabi.FormatR8G8B8A8Unorm,
		ImageExtent:      vkabi.Extent2D{Width: 64, Height: 64},
		ImageArrayLayers: 1,
		ImageUsage:       vkabi.ImageUsageColorAttachment,
		ImageSharingMode: vkabi.SharingModeExclusive,
	})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateSwapchainKHR: %v", res)
	}
	defer GfxDestroySwapchainKHR(dev, swap)

	fence, res := GfxCreateFence(dev, &vkabi.FenceCreateInfo{})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateFence: %v", res)
	}
	defer GfxDestroyFence(dev, fence)

	_, res = GfxAcquireNextImageKHR(swap, 0, fence)
	if res != vkabi.Success && res != vkabi.SuboptimalKHR {
		t.Fatalf("GfxAcquireNextImageKHR: %v", res)
	}
	if got := GfxGetFenceStatus(fence); got != vkabi.Success {
		t.Fatalf("GfxGetFenceStatus after acquire = %v, want Success", got)
	}
}

func TestQueuePresentKHR(t *testing.T) {
	_, dev, q := newTestDevice(t)
	inst := newTestInstance(t)
	surf := createTestSurface(t, inst)
	defer GfxDestroySurfaceKHR(surf)

	swap, res := GfxCreateSwapchainKHR(dev, &vkabi.SwapchainCreateInfoKHR{
		Surface:          surf,
		MinImageCount:    2,
		ImageFormat:      vkabi.FormatR8G8B8A8Unorm,
		ImageExtent:      vkabi.Extent2D{Width: 64, Height: 64},
		ImageArrayLayers: 1,
		ImageUsage:       vkabi.ImageUsageColorAttachment,
		ImageSharingMode: vkabi.SharingModeExclusive,
	})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateSwapchainKHR: %v", res)
	}
	defer GfxDestroySwapchainKHR(dev, swap)

	fence, res := GfxCreateFence(dev, &vkabi.FenceCreateInfo{})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateFence: %v", res)
	}
	defer GfxDestroyFence(dev, fence)

	idx, res := GfxAcquireNextImageKHR(swap, 0, fence)
	if res != vkabi.Success && res != vkabi.SuboptimalKHR {
		t.Fatalf("GfxAcquireNextImageKHR: %v", res)
	}

	res = GfxQueuePresentKHR(q, &vkabi.PresentInfoKHR{
		Swapchains:  []vkabi.SwapchainKHR{swap},
		ImageIndices: []uint32{idx},
	})
	if res != vkabi.Success && res != vkabi.SuboptimalKHR {
		t.Fatalf("GfxQueuePresentKHR: %v", res)
	}
}
