// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"testing"

	"github.com/gogpu/vkicd/vkabi"
)

// forceNoopBackend pins GOGPU_ICD_BACKEND to a value backendFromEnvValue
// does not recognize, which resolves to gputypes.BackendEmpty - the same
// variant hal/noop.API.Variant() reports. hal/noop registers unconditionally
// (no build tag), so this is the one backend selection guaranteed available
// in any test environment, unlike hal/vulkan or hal/gles which only
// register under platform build tags and need a real GPU besides.
func forceNoopBackend(t *testing.T) {
	t.Helper()
	t.Setenv("GOGPU_ICD_BACKEND", "noop")
}

// newTestInstance creates an instance against the noop backend and
// registers its teardown.
func newTestInstance(t *testing.T) vkabi.Instance {
	t.Helper()
	forceNoopBackend(t)

	inst, res := GfxCreateInstance(&vkabi.InstanceCreateInfo{})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateInstance: %v", res)
	}
	t.Cleanup(func() { GfxDestroyInstance(inst) })
	return inst
}

// firstPhysicalDevice enumerates inst's physical devices and returns the
// first one, failing the test if none are reported.
func firstPhysicalDevice(t *testing.T, inst vkabi.Instance) vkabi.PhysicalDevice {
	t.Helper()
	if _, res := GfxEnumeratePhysicalDevices(inst, nil); res != vkabi.Success {
		t.Fatalf("GfxEnumeratePhysicalDevices (count): %v", res)
	}
	out := make([]vkabi.PhysicalDevice, 8)
	pds, res := GfxEnumeratePhysicalDevices(inst, out)
	if res != vkabi.Success {
		t.Fatalf("GfxEnumeratePhysicalDevices (fill): %v", res)
	}
	if len(pds) == 0 {
		t.Fatal("GfxEnumeratePhysicalDevices: noop backend reported zero adapters")
	}
	return pds[0]
}

// newTestDevice walks the full instance -> physical device -> logical
// device -> queue chain against the noop backend, the setup nearly every
// other test in this package needs.
func newTestDevice(t *testing.T) (vkabi.PhysicalDevice, vkabi.Device, vkabi.Queue) {
	t.Helper()
	inst := newTestInstance(t)
	pd := firstPhysicalDevice(t, inst)

	dev, res := GfxCreateDevice(pd, &vkabi.DeviceCreateInfo{
		QueueCreateInfos: []vkabi.DeviceQueueCreateInfo{
			{QueueFamilyIndex: 0, QueuePriorities: []float32{1}},
		},
	})
	if res != vkabi.Success {
		t.Fatalf("GfxCreateDevice: %v", res)
	}
	t.Cleanup(func() { GfxDestroyDevice(dev) })

	q := GfxGetDeviceQueue(dev, 0, 0)
	return pd, dev, q
}

// expectPanic runs fn and fails the test unless it panics.
func expectPanic(t *testing.T, reason string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic: %s", reason)
		}
	}()
	fn()
}
