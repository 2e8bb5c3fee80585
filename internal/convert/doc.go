// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package convert implements the Vulkan <-> HAL translation tables: formats,
// swizzles, aspects, image kinds, usages, memory properties, pipeline
// state, and subresource ranges. Every function here is meant to be pure
// and total over its accepted domain - an unexpected enum value is a fatal
// precondition violation, not a recoverable error, mirroring the contract
// a real Vulkan validation layer would already have enforced upstream.
//
// The tables mirror hal/vulkan/convert.go, which walks the same domains in
// the opposite direction (HAL vocabulary -> raw Vulkan, for talking to a
// real driver). This package walks Vulkan (vkabi) -> HAL (gputypes), for
// exposing this driver's own HAL backends as a Vulkan ICD.
package convert
