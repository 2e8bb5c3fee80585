// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package icd

import (
	"os"

	"github.com/gogpu/gputypes"
)

// Config holds instance/device creation-time tunables read from the
// environment, the same direct os.Getenv style hal/allbackends's backend
// registration and hal/vulkan/api_linux.go's Wayland detection use rather
// than a flags/viper-style configuration package.
type Config struct {
	// Backend forces a specific HAL backend instead of the platform
	// default, set via GOGPU_ICD_BACKEND (e.g. "software", "vulkan",
	// "metal", "dx12", "gles"). Primarily for running the ICD's own test
	// suite against hal/software without a real GPU present.
	Backend gputypes.Backend

	// BackendForced reports whether GOGPU_ICD_BACKEND was set at all;
	// an empty/unrecognized value still forces BackendEmpty (noop) rather
	// than silently falling through to platform autodetection.
	BackendForced bool
}

// loadConfig reads process environment variables into a Config. Called once
// per vkCreateInstance - Vulkan has no global "configure the driver" call,
// so creation-time is the only point this core can observe the environment.
func loadConfig() Config {
	v, ok := os.LookupEnv("GOGPU_ICD_BACKEND")
	if !ok {
		return Config{}
	}
	return Config{Backend: backendFromEnvValue(v), BackendForced: true}
}

func backendFromEnvValue(v string) gputypes.Backend {
	switch v {
	case "vulkan":
		return gputypes.BackendVulkan
	case "metal":
		return gputypes.BackendMetal
	case "dx12":
		return gputypes.BackendDX12
	case "gles", "gl":
		return gputypes.BackendGL
	case "software":
		return gputypes.BackendEmpty // hal/software registers under BackendEmpty's slot in test builds; see DESIGN.md
	default:
		return gputypes.BackendEmpty
	}
}
