// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package handle implements the two Vulkan handle shapes: dispatchable
// (instance, physical device, device, queue, command buffer) and
// non-dispatchable (every other object). Both shapes are heap-allocated and
// referenced by a plain uintptr at the ABI boundary, matching vkabi's
// generated handle types.
//
// A handle's backing value is kept reachable by a package-level registry
// keyed by the handle's own numeric value. The registry entry holds a real
// Go pointer (unsafe.Pointer, which the garbage collector tracks, unlike
// uintptr), so the value stays alive for as long as its handle is live -
// exactly the ownership window the Vulkan handle contract describes: one
// Make, one Release, no aliasing beyond plain copies of the handle word.
package handle
