// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"testing"

	"github.com/gogpu/vkicd/vkabi"
)

func TestCreateDestroyDevice(t *testing.T) {
	_, dev, q := newTestDevice(t)
	if dev == 0 {
		t.Fatal("GfxCreateDevice returned a null handle on success")
	}
	if q == 0 {
		t.Fatal("GfxGetDeviceQueue returned a null handle")
	}
}

func TestGetDeviceQueueRejectsUnrequestedIndex(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	expectPanic(t, "queue index never requested at device creation", func() {
		GfxGetDeviceQueue(dev, 0, 5)
	})
}

func TestGetDeviceQueueRejectsUnknownFamily(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	expectPanic(t, "queue family other than 0 does not exist", func() {
		GfxGetDeviceQueue(dev, 1, 0)
	})
}

func TestDeviceWaitIdle(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	if res := GfxDeviceWaitIdle(dev); res != vkabi.Success {
		t.Fatalf("GfxDeviceWaitIdle: %v", res)
	}
}

func TestMapUnmapMemoryRoundTrip(t *testing.T) {
	_, dev, _ := newTestDevice(t)

	mem, res := GfxAllocateMemory(dev, &vkabi.MemoryAllocateInfo{AllocationSize: 256})
	if res != vkabi.Success {
		t.Fatalf("GfxAllocateMemory: %v", res)
	}
	t.Cleanup(func() { GfxFreeMemory(mem) })

	data, res := GfxMapMemory(mem, 0, vkabi.WholeSize)
	if res != vkabi.Success {
		t.Fatalf("GfxMapMemory: %v", res)
	}
	if len(data) != 256 {
		t.Fatalf("len(data) = %d, want 256", len(data))
	}
	data[0] = 0xAB
	GfxUnmapMemory(dev, mem)

	// Remap and confirm the write survived the unmap.
	data2, res := GfxMapMemory(mem, 0, 256)
	if res != vkabi.Success {
		t.Fatalf("second GfxMapMemory: %v", res)
	}
	if data2[0] != 0xAB {
		t.Fatalf("data2[0] = %#x, want 0xAB (write should survive unmap)", data2[0])
	}
	GfxUnmapMemory(dev, mem)
}

func TestMapMemoryTwiceWithoutUnmapPanics(t *testing.T) {
	_, dev, _ := newTestDevice(t)

	mem, res := GfxAllocateMemory(dev, &vkabi.MemoryAllocateInfo{AllocationSize: 64})
	if res != vkabi.Success {
		t.Fatalf("GfxAllocateMemory: %v", res)
	}
	if _, res := GfxMapMemory(mem, 0, vkabi.WholeSize); res != vkabi.Success {
		t.Fatalf("first GfxMapMemory: %v", res)
	}

	expectPanic(t, "mapping an already-mapped VkDeviceMemory", func() {
		GfxMapMemory(mem, 0, vkabi.WholeSize)
	})
}

func TestMapMemoryOutOfRangePanics(t *testing.T) {
	_, dev, _ := newTestDevice(t)

	mem, res := GfxAllocateMemory(dev, &vkabi.MemoryAllocateInfo{AllocationSize: 64})
	if res != vkabi.Success {
		t.Fatalf("GfxAllocateMemory: %v", res)
	}

	expectPanic(t, "mapping beyond the allocation size", func() {
		GfxMapMemory(mem, 32, 64)
	})
}

func TestFlushMappedMemoryRanges(t *testing.T) {
	_, dev, _ := newTestDevice(t)

	mem, res := GfxAllocateMemory(dev, &vkabi.MemoryAllocateInfo{AllocationSize: 64})
	if res != vkabi.Success {
		t.Fatalf("GfxAllocateMemory: %v", res)
	}
	if res := GfxFlushMappedMemoryRanges(dev, []vkabi.DeviceMemory{mem}); res != vkabi.Success {
		t.Fatalf("GfxFlushMappedMemoryRanges: %v", res)
	}
}
