// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vkabi declares the subset of the Vulkan 1.0 core ABI this
// driver exposes: handle types, enums, flag bits, and create-info
// structs, laid out to match the field order of the published Vulkan
// headers. Like vk.xml-derived bindings, this package is largely
// mechanical and carries little behavior of its own - conversion to
// and from the HAL's vocabulary lives in internal/convert.
package vkabi
