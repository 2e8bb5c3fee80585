// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package convert

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/vkicd/vkabi"
)

// LoadOpFromVulkan converts VkAttachmentLoadOp to gputypes.LoadOp.
// DONT_CARE has no HAL equivalent (gputypes only distinguishes Clear from
// Load); it maps to Load, the conservative choice that never fabricates
// contents the application didn't ask for.
func LoadOpFromVulkan(op vkabi.AttachmentLoadOp) gputypes.LoadOp {
	switch op {
	case vkabi.AttachmentLoadOpClear:
		return gputypes.LoadOpClear
	case vkabi.AttachmentLoadOpLoad, vkabi.AttachmentLoadOpDontCare:
		return gputypes.LoadOpLoad
	default:
		fatal("LoadOpFromVulkan", "load op %d has no HAL equivalent", op)
		return gputypes.LoadOpLoad
	}
}

// StoreOpFromVulkan converts VkAttachmentStoreOp to gputypes.StoreOp.
func StoreOpFromVulkan(op vkabi.AttachmentStoreOp) gputypes.StoreOp {
	switch op {
	case vkabi.AttachmentStoreOpStore:
		return gputypes.StoreOpStore
	case vkabi.AttachmentStoreOpDontCare:
		return gputypes.StoreOpDiscard
	default:
		fatal("StoreOpFromVulkan", "store op %d has no HAL equivalent", op)
		return gputypes.StoreOpDiscard
	}
}
