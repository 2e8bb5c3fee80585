// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/vkicd/hal"
	_ "github.com/gogpu/vkicd/hal/allbackends" // registers the noop backend; platform backends register via their own build tags
	"github.com/gogpu/vkicd/internal/convert"
	"github.com/gogpu/vkicd/internal/handle"
	"github.com/gogpu/vkicd/internal/objects"
	"github.com/gogpu/vkicd/vkabi"
)

// instanceExtensions is the lazily-initialized global table spec.md §9
// calls out: the one instance extension this driver advertises, computed
// once since it never depends on create-info.
var (
	instanceExtensionsOnce sync.Once
	instanceExtensions     []vkabi.ExtensionProperties
)

func getInstanceExtensions() []vkabi.ExtensionProperties {
	instanceExtensionsOnce.Do(func() {
		instanceExtensions = []vkabi.ExtensionProperties{
			extensionProperties(vkabi.KHRSurfaceExtensionName, vkabi.KHRSurfaceSpecVersion),
			extensionProperties(vkabi.KHRSwapchainExtensionName, vkabi.KHRSwapchainSpecVersion),
		}
	})
	return instanceExtensions
}

func extensionProperties(name string, specVersion uint32) vkabi.ExtensionProperties {
	var p vkabi.ExtensionProperties
	copy(p.ExtensionName[:], name)
	p.SpecVersion = specVersion
	return p
}

// platformBackend picks the HAL backend a fresh instance should bind to:
// the forced backend from Config if GOGPU_ICD_BACKEND was set, otherwise
// the first backend hal.allbackends registered (noop by default; real
// builds tag in hal/vulkan, hal/metal, hal/dx12, or hal/gles).
func platformBackend(cfg Config) (hal.Backend, bool) {
	if cfg.BackendForced {
		return hal.GetBackend(cfg.Backend)
	}
	for _, v := range hal.AvailableBackends() {
		if b, ok := hal.GetBackend(v); ok {
			return b, true
		}
	}
	return nil, false
}

// GfxCreateInstance implements vkCreateInstance: selects a HAL backend,
// creates the native instance, and returns a dispatchable Instance handle.
// info may carry nil PApplicationInfo and empty layer/extension lists -
// Vulkan permits both.
func GfxCreateInstance(info *vkabi.InstanceCreateInfo) (vkabi.Instance, vkabi.Result) {
	cfg := loadConfig()
	backend, ok := platformBackend(cfg)
	if !ok {
		return 0, vkabi.ErrorIncompatibleDriver
	}

	nativeInstance, err := backend.CreateInstance(&hal.InstanceDescriptor{})
	if err != nil {
		return 0, resultFromHALError(err)
	}

	h := handle.MakeDispatchable(objects.Instance{HAL: nativeInstance})
	return vkabi.Instance(h), vkabi.Success
}

// GfxDestroyInstance implements vkDestroyInstance.
func GfxDestroyInstance(inst vkabi.Instance) {
	if handle.IsNullDispatchable(uintptr(inst)) {
		return
	}
	obj := handle.ReleaseDispatchable[objects.Instance](uintptr(inst))
	obj.HAL.Destroy()
}

// GfxEnumerateInstanceExtensionProperties implements
// vkEnumerateInstanceExtensionProperties's two-phase enumeration protocol
// (spec.md §8's "two-phase enumeration law": a nil/zero-capacity query
// reports the true count via Success; a short buffer copies what fits and
// reports Incomplete).
func GfxEnumerateInstanceExtensionProperties(out []vkabi.ExtensionProperties) ([]vkabi.ExtensionProperties, vkabi.Result) {
	all := getInstanceExtensions()
	if out == nil {
		return nil, vkabi.Success
	}
	n := copy(out, all)
	if n < len(all) {
		return out[:n], vkabi.Incomplete
	}
	return out[:n], vkabi.Success
}

// GfxEnumerateInstanceLayerProperties implements
// vkEnumerateInstanceLayerProperties. This driver exposes no layers of its
// own; the loader composes layers from elsewhere.
func GfxEnumerateInstanceLayerProperties(out []vkabi.LayerProperties) ([]vkabi.LayerProperties, vkabi.Result) {
	if out == nil {
		return nil, vkabi.Success
	}
	return out[:0], vkabi.Success
}

// GfxEnumeratePhysicalDevices implements vkEnumeratePhysicalDevices per
// spec.md §8 scenario 2: enumerate adapters from the instance's HAL
// instance, lazily materialize one PhysicalDevice handle per adapter on
// first call, and reuse the same handles on subsequent calls so identity
// is stable for the instance's lifetime.
func GfxEnumeratePhysicalDevices(inst vkabi.Instance, out []vkabi.PhysicalDevice) ([]vkabi.PhysicalDevice, vkabi.Result) {
	obj := handle.DerefDispatchable[objects.Instance](uintptr(inst))
	if obj.Adapters == nil {
		exposed := obj.HAL.EnumerateAdapters(nil)
		obj.Adapters = make([]uintptr, len(exposed))
		for i, e := range exposed {
			obj.Adapters[i] = handle.MakeDispatchable(objects.Adapter{HAL: e.Adapter, Exposed: e, Instance: obj})
		}
	}

	if out == nil {
		return nil, vkabi.Success
	}
	all := make([]vkabi.PhysicalDevice, len(obj.Adapters))
	for i, a := range obj.Adapters {
		all[i] = vkabi.PhysicalDevice(a)
	}
	n := copy(out, all)
	if n < len(all) {
		return out[:n], vkabi.Incomplete
	}
	return out[:n], vkabi.Success
}

// GfxGetPhysicalDeviceProperties implements vkGetPhysicalDeviceProperties.
func GfxGetPhysicalDeviceProperties(pd vkabi.PhysicalDevice) vkabi.PhysicalDeviceProperties {
	a := handle.DerefDispatchable[objects.Adapter](uintptr(pd))
	var props vkabi.PhysicalDeviceProperties
	props.ApiVersion = vkabi.ApiVersion10
	props.DriverVersion = vkabi.DriverVersion
	props.VendorID = a.Exposed.Info.VendorID
	props.DeviceID = a.Exposed.Info.DeviceID
	props.DeviceType = physicalDeviceTypeFromHAL(a.Exposed.Info.DeviceType)
	copy(props.DeviceName[:], a.Exposed.Info.Name)
	props.Limits = physicalDeviceLimitsFromHAL(a.Exposed.Capabilities.Limits)
	// SparseProperties is left zero-initialized: sparse residency is a
	// documented Non-goal (spec.md §9).
	return props
}

func physicalDeviceTypeFromHAL(t gputypes.DeviceType) vkabi.PhysicalDeviceType {
	switch t {
	case gputypes.DeviceTypeIntegratedGPU:
		return vkabi.PhysicalDeviceTypeIntegratedGPU
	case gputypes.DeviceTypeDiscreteGPU:
		return vkabi.PhysicalDeviceTypeDiscreteGPU
	case gputypes.DeviceTypeVirtualGPU:
		return vkabi.PhysicalDeviceTypeVirtualGPU
	case gputypes.DeviceTypeCPU:
		return vkabi.PhysicalDeviceTypeCPU
	default:
		return vkabi.PhysicalDeviceTypeOther
	}
}

func physicalDeviceLimitsFromHAL(l gputypes.Limits) vkabi.PhysicalDeviceLimits {
	return vkabi.PhysicalDeviceLimits{
		MaxTexelBufferElements:              l.MaxBufferSize,
		MaxUniformBufferRange:               l.MaxUniformBufferBindingSize,
		MaxStorageBufferRange:               l.MaxStorageBufferBindingSize,
		MaxPushConstantsSize:                l.MaxPushConstantSize,
		MaxBoundDescriptorSets:              l.MaxBindGroups,
		MaxPerStageDescriptorSamplers:       l.MaxSamplersPerShaderStage,
		MaxPerStageDescriptorUniformBuffers: l.MaxUniformBuffersPerShaderStage,
		MaxPerStageDescriptorStorageBuffers: l.MaxStorageBuffersPerShaderStage,
		MaxPerStageDescriptorSampledImages:  l.MaxSampledTexturesPerShaderStage,
		MaxPerStageDescriptorStorageImages:  l.MaxStorageTexturesPerShaderStage,
		MaxVertexInputAttributes:            l.MaxVertexAttributes,
		MaxVertexInputBindings:              l.MaxVertexBuffers,
		MaxVertexInputBindingStride:         l.MaxVertexBufferArrayStride,
		MaxColorAttachments:                 l.MaxColorAttachments,
		MaxComputeWorkGroupInvocations:      l.MaxComputeInvocationsPerWorkgroup,
		MaxComputeWorkGroupSize:             [3]uint32{l.MaxComputeWorkgroupSizeX, l.MaxComputeWorkgroupSizeY, l.MaxComputeWorkgroupSizeZ},
		MaxComputeWorkGroupCount:            [3]uint32{l.MaxComputeWorkgroupsPerDimension, l.MaxComputeWorkgroupsPerDimension, l.MaxComputeWorkgroupsPerDimension},
		FramebufferColorSampleCounts:        vkabi.SampleCount1 | vkabi.SampleCount4,
		FramebufferDepthSampleCounts:        vkabi.SampleCount1 | vkabi.SampleCount4,
		MaxViewports:                        1,
		MaxViewportDimensions:               [2]uint32{8192, 8192},
		MinMemoryMapAlignment:               64,
		MinUniformBufferOffsetAlignment:     256,
		MinStorageBufferOffsetAlignment:     256,
		MaxImageDimension1D:                 8192,
		MaxImageDimension2D:                 8192,
		MaxImageDimension3D:                 2048,
		MaxImageArrayLayers:                 2048,
	}
}

// GfxGetPhysicalDeviceFeatures implements vkGetPhysicalDeviceFeatures. The
// HAL's gputypes.Features is a single capability bitmask; this core reports
// conservative true/false only for the handful of bits that map cleanly,
// leaving the rest false - see DESIGN.md for the per-field mapping.
func GfxGetPhysicalDeviceFeatures(pd vkabi.PhysicalDevice) vkabi.PhysicalDeviceFeatures {
	a := handle.DerefDispatchable[objects.Adapter](uintptr(pd))
	f := a.Exposed.Features
	return vkabi.PhysicalDeviceFeatures{
		FullDrawIndexUint32: true,
		// No gputypes.Feature bit maps to imageCubeArray; every HAL backend
		// in this driver's scope supports it.
		ImageCubeArray:    true,
		IndependentBlend:  true,
		SamplerAnisotropy: true,
		MultiDrawIndirect: f&gputypes.FeatureIndirectFirstInstance != 0,
		ShaderFloat64:     f&gputypes.FeatureShaderFloat64 != 0,
	}
}

// GfxGetPhysicalDeviceMemoryProperties implements
// vkGetPhysicalDeviceMemoryProperties. Every HAL backend presents memory as
// a single unified heap to this core (hal.Device has no separate memory
// type/heap query of its own), so this reports one host-visible,
// device-local heap - the simplest legal answer a real UMA GPU would give.
func GfxGetPhysicalDeviceMemoryProperties(pd vkabi.PhysicalDevice) vkabi.PhysicalDeviceMemoryProperties {
	var props vkabi.PhysicalDeviceMemoryProperties
	props.MemoryHeapCount = 1
	props.MemoryHeaps[0] = vkabi.MemoryHeap{Size: vkabi.WholeSize, Flags: vkabi.MemoryHeapDeviceLocal}
	props.MemoryTypeCount = 1
	props.MemoryTypes[0] = vkabi.MemoryType{
		PropertyFlags: vkabi.MemoryPropertyDeviceLocal | vkabi.MemoryPropertyHostVisible | vkabi.MemoryPropertyHostCoherent,
		HeapIndex:     0,
	}
	return props
}

// GfxGetPhysicalDeviceQueueFamilyProperties implements
// vkGetPhysicalDeviceQueueFamilyProperties, sourced from ExposedAdapter per
// SPEC_FULL.md's supplemented-features list. Every HAL adapter exposes
// exactly one queue family (objects.Gpu's doc comment explains why),
// supporting every queue operation Vulkan has (graphics|compute|transfer).
func GfxGetPhysicalDeviceQueueFamilyProperties(pd vkabi.PhysicalDevice, out []vkabi.QueueFamilyProperties) []vkabi.QueueFamilyProperties {
	_ = handle.DerefDispatchable[objects.Adapter](uintptr(pd))
	all := []vkabi.QueueFamilyProperties{{
		QueueFlags:                  vkabi.QueueGraphics | vkabi.QueueCompute | vkabi.QueueTransfer,
		QueueCount:                  1,
		TimestampValidBits:          64,
		MinImageTransferGranularity: vkabi.Extent3D{Width: 1, Height: 1, Depth: 1},
	}}
	if out == nil {
		return all
	}
	n := copy(out, all)
	return out[:n]
}

// GfxGetPhysicalDeviceFormatProperties implements
// vkGetPhysicalDeviceFormatProperties by round-tripping the HAL's
// per-format capability flags through internal/convert.FormatProperties,
// per SPEC_FULL.md's supplemented-features list.
func GfxGetPhysicalDeviceFormatProperties(pd vkabi.PhysicalDevice, format vkabi.Format) vkabi.FormatProperties {
	a := handle.DerefDispatchable[objects.Adapter](uintptr(pd))
	caps := a.HAL.TextureFormatCapabilities(convert.FormatFromVulkan(format))
	return convert.FormatProperties(caps)
}
