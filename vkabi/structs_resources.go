// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vkabi

// BufferCreateInfo mirrors VkBufferCreateInfo.
type BufferCreateInfo struct {
	SType                 StructureType
	Flags                 Flags
	Size                  uint64
	Usage                 BufferUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndices    []uint32
}

// BufferViewCreateInfo mirrors VkBufferViewCreateInfo.
type BufferViewCreateInfo struct {
	SType  StructureType
	Flags  Flags
	Buffer Buffer
	Format Format
	Offset uint64
	Range  uint64
}

// ImageCreateInfo mirrors VkImageCreateInfo.
type ImageCreateInfo struct {
	SType              StructureType
	Flags              ImageCreateFlags
	ImageType          ImageType
	Format             Format
	Extent             Extent3D
	MipLevels          uint32
	ArrayLayers        uint32
	Samples            SampleCountFlags
	Tiling             ImageTiling
	Usage              ImageUsageFlags
	SharingMode        SharingMode
	QueueFamilyIndices []uint32
	InitialLayout      ImageLayout
}

// ImageViewCreateInfo mirrors VkImageViewCreateInfo.
type ImageViewCreateInfo struct {
	SType            StructureType
	Flags            Flags
	Image            Image
	ViewType         ImageViewType
	Format           Format
	Components       ComponentMapping
	SubresourceRange ImageSubresourceRange
}

// SamplerCreateInfo mirrors VkSamplerCreateInfo.
type SamplerCreateInfo struct {
	SType                   StructureType
	Flags                   Flags
	MagFilter               Filter
	MinFilter               Filter
	MipmapMode              SamplerMipmapMode
	AddressModeU            SamplerAddressMode
	AddressModeV            SamplerAddressMode
	AddressModeW            SamplerAddressMode
	MipLodBias              float32
	AnisotropyEnable        bool
	MaxAnisotropy           float32
	CompareEnable           bool
	CompareOp               CompareOp
	MinLod                  float32
	MaxLod                  float32
	BorderColor             int32
	UnnormalizedCoordinates bool
}
