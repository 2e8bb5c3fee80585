// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkabi

// MakeVersion packs (major, minor, patch) the way VK_MAKE_VERSION does.
func MakeVersion(major, minor, patch uint32) uint32 {
	return (major << 22) | (minor << 12) | patch
}

// ApiVersion10 is the only API version this driver advertises.
var ApiVersion10 = MakeVersion(1, 0, 66)

// DriverVersion is the driver version reported in VkPhysicalDeviceProperties.
const DriverVersion = 1

// IcdLoaderInterfaceVersion is the negotiated vk_icd* interface version.
const IcdLoaderInterfaceVersion = 5

// Remaining* sentinels used by subresource ranges.
const (
	RemainingMipLevels   = ^uint32(0)
	RemainingArrayLayers = ^uint32(0)
	WholeSize            = ^uint64(0)
	QueueFamilyIgnored   = ^uint32(0)
	SubpassExternal      = ^uint32(0)
	AttachmentUnused     = ^uint32(0)
)

const (
	MaxPhysicalDeviceNameSize = 256
	UUIDSize                  = 16
	MaxMemoryTypes            = 32
	MaxMemoryHeaps            = 16
	MaxExtensionNameSize      = 256
	MaxDescriptionSize        = 256
)

// KHRSurfaceExtensionName is the one instance extension this driver advertises (spec §6.2).
const (
	KHRSurfaceExtensionName        = "VK_KHR_surface"
	KHRSurfaceSpecVersion          = 25
	KHRSwapchainExtensionName      = "VK_KHR_swapchain"
	KHRSwapchainSpecVersion        = 70
	KHRWin32SurfaceExtensionName   = "VK_KHR_win32_surface"
	MVKMacosSurfaceExtensionName   = "VK_MVK_macos_surface"
	EXTMetalSurfaceExtensionName   = "VK_EXT_metal_surface"
	KHRXcbSurfaceExtensionName     = "VK_KHR_xcb_surface"
)
