//go:build software

package software

import "github.com/gogpu/vkicd/hal"

// init registers the software backend with the HAL registry.
func init() {
	hal.RegisterBackend(API{})
}
