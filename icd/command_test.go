// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"testing"

	"github.com/gogpu/vkicd/vkabi"
)

func createCommandBuffer(t *testing.T, dev vkabi.Device) (vkabi.CommandPool, vkabi.CommandBuffer) {
	t.Helper()
	pool, res := GfxCreateCommandPool(dev, &vkabi.CommandPoolCreateInfo{QueueFamilyIndex: 0})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateCommandPool: %v", res)
	}
	bufs, res := GfxAllocateCommandBuffers(&vkabi.CommandBufferAllocateInfo{
		CommandPool:        pool,
		Level:              vkabi.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	})
	if res != vkabi.Success {
		t.Fatalf("GfxAllocateCommandBuffers: %v", res)
	}
	if len(bufs) != 1 {
		t.Fatalf("len(bufs) = %d, want 1", len(bufs))
	}
	return pool, bufs[0]
}

func TestCommandBufferRecordAndSubmitCopyBuffer(t *testing.T) {
	_, dev, q := newTestDevice(t)
	pool, cb := createCommandBuffer(t, dev)
	defer GfxDestroyCommandPool(dev, pool)

	src, srcMem := createBoundBuffer(t, dev, 256, vkabi.BufferUsageTransferSrc)
	defer GfxFreeMemory(srcMem)
	defer GfxDestroyBuffer(dev, src)
	dst, dstMem := createBoundBuffer(t, dev, 256, vkabi.BufferUsageTransferDst)
	defer GfxFreeMemory(dstMem)
	defer GfxDestroyBuffer(dev, dst)

	if res := GfxBeginCommandBuffer(cb, &vkabi.CommandBufferBeginInfo{}); res != vkabi.Success {
		t.Fatalf("GfxBeginCommandBuffer: %v", res)
	}
	GfxCmdCopyBuffer(cb, src, dst, []vkabi.BufferCopy{{Size: 256}})
	if res := GfxEndCommandBuffer(cb); res != vkabi.Success {
		t.Fatalf("GfxEndCommandBuffer: %v", res)
	}

	fence, res := GfxCreateFence(dev, &vkabi.FenceCreateInfo{})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateFence: %v", res)
	}
	defer GfxDestroyFence(dev, fence)

	res = GfxQueueSubmit(q, []vkabi.SubmitInfo{{CommandBuffers: []vkabi.CommandBuffer{cb}}}, fence)
	if res != vkabi.Success {
		t.Fatalf("GfxQueueSubmit: %v", res)
	}
	if res := GfxWaitForFences(dev, []vkabi.Fence{fence}, true, 0); res != vkabi.Success {
		t.Fatalf("GfxWaitForFences: %v", res)
	}
	if res := GfxGetFenceStatus(fence); res != vkabi.Success {
		t.Fatalf("GfxGetFenceStatus after wait = %v, want Success", res)
	}
}

func TestEndCommandBufferWithoutBeginPanics(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	pool, cb := createCommandBuffer(t, dev)
	defer GfxDestroyCommandPool(dev, pool)

	expectPanic(t, "ending a command buffer that was never begun", func() {
		GfxEndCommandBuffer(cb)
	})
}

func TestCmdAfterEndPanics(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	pool, cb := createCommandBuffer(t, dev)
	defer GfxDestroyCommandPool(dev, pool)

	if res := GfxBeginCommandBuffer(cb, &vkabi.CommandBufferBeginInfo{}); res != vkabi.Success {
		t.Fatalf("GfxBeginCommandBuffer: %v", res)
	}
	if res := GfxEndCommandBuffer(cb); res != vkabi.Success {
		t.Fatalf("GfxEndCommandBuffer: %v", res)
	}

	expectPanic(t, "recording a command after the buffer was ended", func() {
		GfxCmdCopyBuffer(cb, 0, 0, nil)
	})
}

func TestResetCommandPoolResetsBuffers(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	pool, cb := createCommandBuffer(t, dev)
	defer GfxDestroyCommandPool(dev, pool)

	if res := GfxBeginCommandBuffer(cb, &vkabi.CommandBufferBeginInfo{}); res != vkabi.Success {
		t.Fatalf("GfxBeginCommandBuffer: %v", res)
	}
	if res := GfxEndCommandBuffer(cb); res != vkabi.Success {
		t.Fatalf("GfxEndCommandBuffer: %v", res)
	}
	if res := GfxResetCommandPool(pool); res != vkabi.Success {
		t.Fatalf("GfxResetCommandPool: %v", res)
	}

	// After reset the buffer is back in the initial state: recording
	// without a fresh vkBeginCommandBuffer is a precondition violation.
	expectPanic(t, "recording into a buffer reset back to the initial state", func() {
		GfxCmdCopyBuffer(cb, 0, 0, nil)
	})
}

func TestFreeCommandBuffersRemovesFromPool(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	pool, cb := createCommandBuffer(t, dev)
	defer GfxDestroyCommandPool(dev, pool)

	GfxFreeCommandBuffers([]vkabi.CommandBuffer{cb})
}

func TestQueueWaitIdle(t *testing.T) {
	_, _, q := newTestDevice(t)
	if res := GfxQueueWaitIdle(q); res != vkabi.Success {
		t.Fatalf("GfxQueueWaitIdle: %v", res)
	}
}

func TestCmdPushConstantsIsAnAcknowledgedGap(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	pool, cb := createCommandBuffer(t, dev)
	defer GfxDestroyCommandPool(dev, pool)

	if res := GfxBeginCommandBuffer(cb, &vkabi.CommandBufferBeginInfo{}); res != vkabi.Success {
		t.Fatalf("GfxBeginCommandBuffer: %v", res)
	}
	expectPanic(t, "vkCmdPushConstants has no HAL equivalent and must fail loudly", func() {
		GfxCmdPushConstants(cb, 0, []byte{1, 2, 3, 4})
	})
}

func TestCmdClearColorImageIsAnAcknowledgedGap(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	pool, cb := createCommandBuffer(t, dev)
	defer GfxDestroyCommandPool(dev, pool)

	if res := GfxBeginCommandBuffer(cb, &vkabi.CommandBufferBeginInfo{}); res != vkabi.Success {
		t.Fatalf("GfxBeginCommandBuffer: %v", res)
	}
	expectPanic(t, "vkCmdClearColorImage has no HAL equivalent and must fail loudly", func() {
		GfxCmdClearColorImage(cb, 0, vkabi.ClearColorValue{}, nil)
	})
}
