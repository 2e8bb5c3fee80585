// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"time"

	"github.com/gogpu/vkicd/internal/handle"
	"github.com/gogpu/vkicd/internal/objects"
	"github.com/gogpu/vkicd/vkabi"
)

// GfxCreateFence implements vkCreateFence.
func GfxCreateFence(dev vkabi.Device, info *vkabi.FenceCreateInfo) (vkabi.Fence, vkabi.Result) {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	f, err := gpu.HAL.CreateFence()
	if err != nil {
		return 0, resultFromHALError(err)
	}
	h := handle.MakeNonDispatchable(objects.Sync{HAL: f, Signaled: info.Flags&vkabi.FenceCreateSignaled != 0})
	return vkabi.Fence(h), vkabi.Success
}

// GfxDestroyFence implements vkDestroyFence.
func GfxDestroyFence(dev vkabi.Device, fence vkabi.Fence) {
	if handle.IsNullNonDispatchable(uintptr(fence)) {
		return
	}
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	s := handle.ReleaseNonDispatchable[objects.Sync](uintptr(fence))
	gpu.HAL.DestroyFence(s.HAL)
}

// GfxResetFences implements vkResetFences.
func GfxResetFences(fences []vkabi.Fence) vkabi.Result {
	for _, f := range fences {
		handle.DerefNonDispatchable[objects.Sync](uintptr(f)).Signaled = false
	}
	return vkabi.Success
}

// GfxGetFenceStatus implements vkGetFenceStatus.
func GfxGetFenceStatus(fence vkabi.Fence) vkabi.Result {
	s := handle.DerefNonDispatchable[objects.Sync](uintptr(fence))
	if s.Signaled {
		return vkabi.Success
	}
	return vkabi.NotReady
}

// GfxWaitForFences implements vkWaitForFences.
func GfxWaitForFences(dev vkabi.Device, fences []vkabi.Fence, waitAll bool, timeout time.Duration) vkabi.Result {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))

	for _, f := range fences {
		s := handle.DerefNonDispatchable[objects.Sync](uintptr(f))
		if s.Signaled {
			continue
		}
		ok, err := gpu.HAL.Wait(s.HAL, 1, timeout)
		if err != nil {
			return resultFromHALError(err)
		}
		if ok {
			s.Signaled = true
			continue
		}
		if waitAll {
			return vkabi.Timeout
		}
	}

	if !waitAll {
		for _, f := range fences {
			if handle.DerefNonDispatchable[objects.Sync](uintptr(f)).Signaled {
				return vkabi.Success
			}
		}
		return vkabi.Timeout
	}
	return vkabi.Success
}

// GfxCreateSemaphore implements vkCreateSemaphore. Per
// internal/objects.Sync's doc comment, a semaphore bottoms out in the same
// HAL fence primitive a VkFence does; Signaled is simply never consulted
// for a handle created this way.
func GfxCreateSemaphore(dev vkabi.Device) (vkabi.Semaphore, vkabi.Result) {
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	f, err := gpu.HAL.CreateFence()
	if err != nil {
		return 0, resultFromHALError(err)
	}
	h := handle.MakeNonDispatchable(objects.Sync{HAL: f})
	return vkabi.Semaphore(h), vkabi.Success
}

// GfxDestroySemaphore implements vkDestroySemaphore.
func GfxDestroySemaphore(dev vkabi.Device, sem vkabi.Semaphore) {
	if handle.IsNullNonDispatchable(uintptr(sem)) {
		return
	}
	gpu := handle.DerefDispatchable[objects.Gpu](uintptr(dev))
	s := handle.ReleaseNonDispatchable[objects.Sync](uintptr(sem))
	gpu.HAL.DestroyFence(s.HAL)
}
