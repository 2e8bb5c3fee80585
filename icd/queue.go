// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"time"

	"github.com/gogpu/vkicd/hal"
	"github.com/gogpu/vkicd/internal/handle"
	"github.com/gogpu/vkicd/internal/objects"
	"github.com/gogpu/vkicd/vkabi"
)

// GfxQueueSubmit implements vkQueueSubmit. Wait/signal semaphores carry no
// HAL counterpart to block on mid-queue (see internal/objects.Sync's doc
// comment) - this core submits every batch's command buffers in order and
// relies on the HAL queue itself being a single in-order stream, which is
// the same assumption the noop/software/gles backends make.
func GfxQueueSubmit(q vkabi.Queue, submits []vkabi.SubmitInfo, fence vkabi.Fence) vkabi.Result {
	queue := handle.DerefDispatchable[objects.Queue](uintptr(q))

	var halFence hal.Fence
	var sync *objects.Sync
	if !handle.IsNullNonDispatchable(uintptr(fence)) {
		sync = handle.DerefNonDispatchable[objects.Sync](uintptr(fence))
		halFence = sync.HAL
	}

	for _, submit := range submits {
		recorded := make([]hal.CommandBuffer, 0, len(submit.CommandBuffers))
		for _, cb := range submit.CommandBuffers {
			c := handle.DerefDispatchable[objects.CommandBuffer](uintptr(cb))
			if c.Recorded == nil {
				fatalf("vkQueueSubmit", "command buffer was never ended")
			}
			recorded = append(recorded, c.Recorded)
		}
		if err := queue.HAL.Submit(recorded, halFence, 1); err != nil {
			return resultFromHALError(err)
		}
	}

	if sync != nil {
		sync.Signaled = true
	}
	return vkabi.Success
}

// GfxQueueWaitIdle implements vkQueueWaitIdle. The HAL has no dedicated
// queue-idle primitive, so this core creates a throwaway fence, submits an
// empty batch against it, and waits - the same trick a thin translation
// layer over a fence-only backend (Metal/D3D12, both fence-native) would
// use.
func GfxQueueWaitIdle(q vkabi.Queue) vkabi.Result {
	queue := handle.DerefDispatchable[objects.Queue](uintptr(q))
	gpu := queue.Gpu

	fence, err := gpu.HAL.CreateFence()
	if err != nil {
		return resultFromHALError(err)
	}
	defer gpu.HAL.DestroyFence(fence)

	if err := queue.HAL.Submit(nil, fence, 1); err != nil {
		return resultFromHALError(err)
	}
	ok, err := gpu.HAL.Wait(fence, 1, 5*time.Second)
	if err != nil {
		return resultFromHALError(err)
	}
	if !ok {
		return vkabi.Timeout
	}
	return vkabi.Success
}

// GfxQueuePresentKHR implements vkQueuePresentKHR.
func GfxQueuePresentKHR(q vkabi.Queue, info *vkabi.PresentInfoKHR) vkabi.Result {
	queue := handle.DerefDispatchable[objects.Queue](uintptr(q))

	result := vkabi.Success
	for i, sc := range info.Swapchains {
		swap := handle.DerefNonDispatchable[objects.Swapchain](uintptr(sc))
		idx := info.ImageIndices[i]
		if int(idx) >= len(swap.Images) {
			fatalf("vkQueuePresentKHR", "image index %d out of range for swapchain", idx)
		}
		img := swap.Images[idx]

		err := queue.HAL.Present(swap.Surface, img.HAL)
		perSwapchain := resultFromHALError(err)
		if info.Results != nil {
			info.Results[i] = perSwapchain
		}
		if perSwapchain != vkabi.Success {
			result = perSwapchain
		}
	}
	return result
}
