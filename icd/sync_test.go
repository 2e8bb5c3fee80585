// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"testing"
	"time"

	"github.com/gogpu/vkicd/vkabi"
)

func TestFenceCreatedUnsignaledByDefault(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	fence, res := GfxCreateFence(dev, &vkabi.FenceCreateInfo{})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateFence: %v", res)
	}
	defer GfxDestroyFence(dev, fence)

	if res := GfxGetFenceStatus(fence); res != vkabi.NotReady {
		t.Fatalf("GfxGetFenceStatus on a freshly created fence = %v, want NotReady", res)
	}
}

func TestFenceCreatedSignaledFlag(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	fence, res := GfxCreateFence(dev, &vkabi.FenceCreateInfo{Flags: vkabi.FenceCreateSignaled})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateFence: %v", res)
	}
	defer GfxDestroyFence(dev, fence)

	if res := GfxGetFenceStatus(fence); res != vkabi.Success {
		t.Fatalf("GfxGetFenceStatus on a VK_FENCE_CREATE_SIGNALED_BIT fence = %v, want Success", res)
	}
}

func TestResetFencesClearsSignaled(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	fence, res := GfxCreateFence(dev, &vkabi.FenceCreateInfo{Flags: vkabi.FenceCreateSignaled})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateFence: %v", res)
	}
	defer GfxDestroyFence(dev, fence)

	if res := GfxResetFences([]vkabi.Fence{fence}); res != vkabi.Success {
		t.Fatalf("GfxResetFences: %v", res)
	}
	if res := GfxGetFenceStatus(fence); res != vkabi.NotReady {
		t.Fatalf("GfxGetFenceStatus after reset = %v, want NotReady", res)
	}
}

func TestWaitForFencesAlreadySignaledReturnsImmediately(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	fence, res := GfxCreateFence(dev, &vkabi.FenceCreateInfo{Flags: vkabi.FenceCreateSignaled})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateFence: %v", res)
	}
	defer GfxDestroyFence(dev, fence)

	if res := GfxWaitForFences(dev, []vkabi.Fence{fence}, true, 0); res != vkabi.Success {
		t.Fatalf("GfxWaitForFences: %v", res)
	}
}

func TestSemaphoreCreateDestroy(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	sem, res := GfxCreateSemaphore(dev)
	if res != vkabi.Success {
		t.Fatalf("GfxCreateSemaphore: %v", res)
	}
	if sem == 0 {
		t.Fatal("GfxCreateSemaphore returned a null handle on success")
	}
	GfxDestroySemaphore(dev, sem)
}

func TestWaitForFencesHonorsTimeoutType(t *testing.T) {
	_, dev, _ := newTestDevice(t)
	fence, res := GfxCreateFence(dev, &vkabi.FenceCreateInfo{Flags: vkabi.FenceCreateSignaled})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateFence: %v", res)
	}
	defer GfxDestroyFence(dev, fence)

	// A signaled fence must not even look at the timeout, so an
	// arbitrarily large time.Duration here must still return immediately.
	if res := GfxWaitForFences(dev, []vkabi.Fence{fence}, true, 10*time.Second); res != vkabi.Success {
		t.Fatalf("GfxWaitForFences: %v", res)
	}
}
