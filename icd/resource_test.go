// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"testing"

	"github.com/gogpu/vkicd/vkabi"
)

func createBoundBuffer(t *testing.T, dev vkabi.Device, size uint64, usage vkabi.BufferUsageFlags) (vkabi.Buffer, vkabi.DeviceMemory) {
	t.Helper()
	buf, res := GfxCreateBuffer(&vkabi.BufferCreateInfo{Size: size, Usage: usage, SharingMode: vkabi.SharingModeExclusive})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateBuffer: %v", res)
	}

	reqs := GfxGetBufferMemoryRequirements(buf)
	if reqs.Size != size {
		t.Fatalf("memory requirements Size = %d, want %d", reqs.Size, size)
	}

	mem, res := GfxAllocateMemory(dev, &vkabi.MemoryAllocateInfo{AllocationSize: reqs.Size})
	if res != vkabi.Success {
		t.Fatalf("GfxAllocateMemory: %v", res)
	}
	if res := GfxBindBufferMemory(dev, buf, mem, 0); res != vkabi.Success {
		t.Fatalf("GfxBindBufferMemory: %v", res)
	}
	return buf, mem
}

func TestBufferCreateBindDestroy(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	buf, mem := createBoundBuffer(t, dev, 1024, vkabi.BufferUsageStorageBuffer|vkabi.BufferUsageTransferDst)
	GfxDestroyBuffer(dev, buf)
	GfxFreeMemory(mem)
}

func TestBindBufferMemoryTwicePanics(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	buf, mem := createBoundBuffer(t, dev, 64, vkabi.BufferUsageStorageBuffer)
	defer GfxFreeMemory(mem)
	defer GfxDestroyBuffer(dev, buf)

	expectPanic(t, "binding an already-bound VkBuffer", func() {
		GfxBindBufferMemory(dev, buf, mem, 0)
	})
}

func TestBufferViewOverUnboundBufferPanics(t *testing.T) {
	buf, res := GfxCreateBuffer(&vkabi.BufferCreateInfo{Size: 256, Usage: vkabi.BufferUsageUniformTexelBuffer})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateBuffer: %v", res)
	}
	expectPanic(t, "creating a buffer view over an unbound buffer", func() {
		GfxCreateBufferView(&vkabi.BufferViewCreateInfo{Buffer: buf, Format: vkabi.FormatR8G8B8A8Unorm, Range: vkabi.WholeSize})
	})
}

func createBoundImage2D(t *testing.T, dev vkabi.Device, w, h uint32, usage vkabi.ImageUsageFlags) vkabi.Image {
	t.Helper()
	img, res := GfxCreateImage(&vkabi.ImageCreateInfo{
		ImageType:   vkabi.ImageType2D,
		Format:      vkabi.FormatR8G8B8A8Unorm,
		Extent:      vkabi.Extent3D{Width: w, Height: h, Depth: 1},
		MipLevels:   1,
		ArrayLayers: 1,
		Samples:     vkabi.SampleCount1,
		Tiling:      vkabi.ImageTilingOptimal,
		Usage:       usage,
		SharingMode: vkabi.SharingModeExclusive,
	})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateImage: %v", res)
	}
	if res := GfxBindImageMemory(dev, img, 0, 0); res != vkabi.Success {
		t.Fatalf("GfxBindImageMemory: %v", res)
	}
	return img
}

func TestImageCreateBindDestroy(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	img := createBoundImage2D(t, dev, 64, 64, vkabi.ImageUsageColorAttachment|vkabi.ImageUsageSampled)
	GfxDestroyImage(dev, img)
}

func TestImageViewIdentitySwizzleRequired(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	img := createBoundImage2D(t, dev, 32, 32, vkabi.ImageUsageSampled)
	defer GfxDestroyImage(dev, img)

	view, res := GfxCreateImageView(dev, &vkabi.ImageViewCreateInfo{
		Image:    img,
		ViewType: vkabi.ImageViewType2D,
		Format:   vkabi.FormatR8G8B8A8Unorm,
		SubresourceRange: vkabi.ImageSubresourceRange{
			AspectMask: vkabi.ImageAspectColor,
			LevelCount: 1,
			LayerCount: 1,
		},
	})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateImageView: %v", res)
	}
	GfxDestroyImageView(dev, view)

	expectPanic(t, "a non-identity component swizzle is not implemented", func() {
		GfxCreateImageView(dev, &vkabi.ImageViewCreateInfo{
			Image:      img,
			ViewType:   vkabi.ImageViewType2D,
			Format:     vkabi.FormatR8G8B8A8Unorm,
			Components: vkabi.ComponentMapping{R: vkabi.ComponentSwizzleB, G: vkabi.ComponentSwizzleG, B: vkabi.ComponentSwizzleR, A: vkabi.ComponentSwizzleA},
			SubresourceRange: vkabi.ImageSubresourceRange{
				AspectMask: vkabi.ImageAspectColor,
				LevelCount: 1,
				LayerCount: 1,
			},
		})
	})
}
