// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import "github.com/gogpu/vkicd/vkabi"

// globalProcs are resolvable through vkGetInstanceProcAddr even when instance
// is null, per the Vulkan loader contract for the handful of commands that
// precede instance creation.
var globalProcs = map[string]any{
	"vkEnumerateInstanceExtensionProperties": GfxEnumerateInstanceExtensionProperties,
	"vkEnumerateInstanceLayerProperties":     GfxEnumerateInstanceLayerProperties,
	"vkCreateInstance":                       GfxCreateInstance,
}

// instanceProcs are resolvable through vkGetInstanceProcAddr once an
// instance exists: instance-level commands plus every physical-device
// command, since Vulkan resolves those through the instance loader too.
var instanceProcs = map[string]any{
	"vkDestroyInstance":                          GfxDestroyInstance,
	"vkEnumeratePhysicalDevices":                 GfxEnumeratePhysicalDevices,
	"vkGetPhysicalDeviceProperties":               GfxGetPhysicalDeviceProperties,
	"vkGetPhysicalDeviceFeatures":                 GfxGetPhysicalDeviceFeatures,
	"vkGetPhysicalDeviceMemoryProperties":          GfxGetPhysicalDeviceMemoryProperties,
	"vkGetPhysicalDeviceQueueFamilyProperties":     GfxGetPhysicalDeviceQueueFamilyProperties,
	"vkGetPhysicalDeviceFormatProperties":          GfxGetPhysicalDeviceFormatProperties,
	"vkCreateDevice":                               GfxCreateDevice,
	"vkGetPhysicalDeviceSurfaceSupportKHR":         GfxGetPhysicalDeviceSurfaceSupportKHR,
	"vkGetPhysicalDeviceSurfaceCapabilitiesKHR":    GfxGetPhysicalDeviceSurfaceCapabilitiesKHR,
	"vkGetPhysicalDeviceSurfaceFormatsKHR":         GfxGetPhysicalDeviceSurfaceFormatsKHR,
	"vkGetPhysicalDeviceSurfacePresentModesKHR":    GfxGetPhysicalDeviceSurfacePresentModesKHR,
	"vkDestroySurfaceKHR":                          GfxDestroySurfaceKHR,
	// vkCreateWin32SurfaceKHR / vkCreateXcbSurfaceKHR / vkCreateMacOSSurfaceMVK /
	// vkCreateMetalSurfaceEXT all route to GfxCreateSurfaceKHR (see its doc
	// comment) - the cgo shim registers each platform name against the same
	// entry, since this table is keyed by the generic implementation and the
	// shim owns which C symbols exist per build tag.
	"vkCreateSurfaceKHR": GfxCreateSurfaceKHR,
}

// deviceProcs are resolvable only through vkGetDeviceProcAddr: every command
// whose first parameter is a device, queue, or a handle descending from one.
var deviceProcs = map[string]any{
	"vkDestroyDevice":                   GfxDestroyDevice,
	"vkGetDeviceQueue":                  GfxGetDeviceQueue,
	"vkDeviceWaitIdle":                  GfxDeviceWaitIdle,
	"vkAllocateMemory":                  GfxAllocateMemory,
	"vkFreeMemory":                      GfxFreeMemory,
	"vkMapMemory":                       GfxMapMemory,
	"vkUnmapMemory":                     GfxUnmapMemory,
	"vkFlushMappedMemoryRanges":         GfxFlushMappedMemoryRanges,
	"vkCreateBuffer":                    GfxCreateBuffer,
	"vkDestroyBuffer":                   GfxDestroyBuffer,
	"vkGetBufferMemoryRequirements":     GfxGetBufferMemoryRequirements,
	"vkBindBufferMemory":                GfxBindBufferMemory,
	"vkCreateBufferView":                GfxCreateBufferView,
	"vkDestroyBufferView":               GfxDestroyBufferView,
	"vkCreateImage":                     GfxCreateImage,
	"vkDestroyImage":                    GfxDestroyImage,
	"vkGetImageMemoryRequirements":      GfxGetImageMemoryRequirements,
	"vkBindImageMemory":                 GfxBindImageMemory,
	"vkCreateImageView":                 GfxCreateImageView,
	"vkDestroyImageView":                GfxDestroyImageView,
	"vkCreateShaderModule":              GfxCreateShaderModule,
	"vkDestroyShaderModule":             GfxDestroyShaderModule,
	"vkCreateSampler":                   GfxCreateSampler,
	"vkDestroySampler":                  GfxDestroySampler,
	"vkCreateDescriptorSetLayout":       GfxCreateDescriptorSetLayout,
	"vkDestroyDescriptorSetLayout":      GfxDestroyDescriptorSetLayout,
	"vkCreateDescriptorPool":            GfxCreateDescriptorPool,
	"vkDestroyDescriptorPool":           GfxDestroyDescriptorPool,
	"vkResetDescriptorPool":             GfxResetDescriptorPool,
	"vkAllocateDescriptorSets":          GfxAllocateDescriptorSets,
	"vkFreeDescriptorSets":              GfxFreeDescriptorSets,
	"vkUpdateDescriptorSets":            GfxUpdateDescriptorSets,
	"vkCreatePipelineLayout":            GfxCreatePipelineLayout,
	"vkDestroyPipelineLayout":           GfxDestroyPipelineLayout,
	"vkCreateRenderPass":                GfxCreateRenderPass,
	"vkDestroyRenderPass":               GfxDestroyRenderPass,
	"vkCreateFramebuffer":               GfxCreateFramebuffer,
	"vkDestroyFramebuffer":              GfxDestroyFramebuffer,
	"vkCreateGraphicsPipelines":         GfxCreateGraphicsPipelines,
	"vkCreateComputePipelines":          GfxCreateComputePipelines,
	"vkDestroyPipeline":                 GfxDestroyPipeline,
	"vkCreateFence":                     GfxCreateFence,
	"vkDestroyFence":                    GfxDestroyFence,
	"vkResetFences":                     GfxResetFences,
	"vkGetFenceStatus":                  GfxGetFenceStatus,
	"vkWaitForFences":                   GfxWaitForFences,
	"vkCreateSemaphore":                 GfxCreateSemaphore,
	"vkDestroySemaphore":                GfxDestroySemaphore,
	"vkCreateCommandPool":               GfxCreateCommandPool,
	"vkDestroyCommandPool":              GfxDestroyCommandPool,
	"vkResetCommandPool":                GfxResetCommandPool,
	"vkAllocateCommandBuffers":          GfxAllocateCommandBuffers,
	"vkFreeCommandBuffers":              GfxFreeCommandBuffers,
	"vkResetCommandBuffer":              GfxResetCommandBuffer,
	"vkBeginCommandBuffer":              GfxBeginCommandBuffer,
	"vkEndCommandBuffer":                GfxEndCommandBuffer,
	"vkCmdCopyBuffer":                   GfxCmdCopyBuffer,
	"vkCmdCopyImage":                    GfxCmdCopyImage,
	"vkCmdCopyBufferToImage":            GfxCmdCopyBufferToImage,
	"vkCmdCopyImageToBuffer":            GfxCmdCopyImageToBuffer,
	"vkCmdClearColorImage":              GfxCmdClearColorImage,
	"vkCmdPipelineBarrier":              GfxCmdPipelineBarrier,
	"vkCmdBeginRenderPass":              GfxCmdBeginRenderPass,
	"vkCmdNextSubpass":                  GfxCmdNextSubpass,
	"vkCmdEndRenderPass":                GfxCmdEndRenderPass,
	"vkCmdBindPipeline":                 GfxCmdBindPipeline,
	"vkCmdBindDescriptorSets":           GfxCmdBindDescriptorSets,
	"vkCmdBindVertexBuffers":            GfxCmdBindVertexBuffers,
	"vkCmdBindIndexBuffer":              GfxCmdBindIndexBuffer,
	"vkCmdSetViewport":                  GfxCmdSetViewport,
	"vkCmdSetScissor":                   GfxCmdSetScissor,
	"vkCmdDraw":                         GfxCmdDraw,
	"vkCmdDrawIndexed":                  GfxCmdDrawIndexed,
	"vkCmdDrawIndirect":                 GfxCmdDrawIndirect,
	"vkCmdDrawIndexedIndirect":          GfxCmdDrawIndexedIndirect,
	"vkCmdDispatch":                     GfxCmdDispatch,
	"vkCmdDispatchIndirect":             GfxCmdDispatchIndirect,
	"vkCmdPushConstants":                GfxCmdPushConstants,
	"vkQueueSubmit":                     GfxQueueSubmit,
	"vkQueueWaitIdle":                   GfxQueueWaitIdle,
	"vkQueuePresentKHR":                 GfxQueuePresentKHR,
	"vkCreateSwapchainKHR":              GfxCreateSwapchainKHR,
	"vkDestroySwapchainKHR":             GfxDestroySwapchainKHR,
	"vkGetSwapchainImagesKHR":           GfxGetSwapchainImagesKHR,
	"vkAcquireNextImageKHR":             GfxAcquireNextImageKHR,
}

// GfxGetInstanceProcAddr implements vkGetInstanceProcAddr per spec.md §4.7:
// for a known name, return the entry point (as a Go function value the cgo
// shim type-switches on to build its C trampoline); unknown names resolve
// to nil. instance is not dereferenced - the loader is permitted to call
// this with instance == VK_NULL_HANDLE for the global-command subset.
func GfxGetInstanceProcAddr(instance vkabi.Instance, name string) any {
	if fn, ok := globalProcs[name]; ok {
		return fn
	}
	if instance == 0 {
		return nil
	}
	if fn, ok := instanceProcs[name]; ok {
		return fn
	}
	if fn, ok := deviceProcs[name]; ok {
		return fn
	}
	return nil
}

// GfxGetDeviceProcAddr implements vkGetDeviceProcAddr per spec.md §4.7:
// device-level names only (swapchain KHR functions included, since this
// driver's devices own their own swapchains).
func GfxGetDeviceProcAddr(device vkabi.Device, name string) any {
	if device == 0 {
		return nil
	}
	if fn, ok := deviceProcs[name]; ok {
		return fn
	}
	return nil
}

// GfxIcdNegotiateLoaderICDInterfaceVersion implements
// vk_icdNegotiateLoaderICDInterfaceVersion: clamp the loader's requested
// version down to vkabi.IcdLoaderInterfaceVersion and report the result
// the loader should use. A requested version below 1 (the lowest version
// ever defined) is a protocol violation from the loader's side.
func GfxIcdNegotiateLoaderICDInterfaceVersion(requested uint32) (negotiated uint32, ok bool) {
	if requested < 1 {
		return 0, false
	}
	if requested > vkabi.IcdLoaderInterfaceVersion {
		return vkabi.IcdLoaderInterfaceVersion, true
	}
	return requested, true
}
