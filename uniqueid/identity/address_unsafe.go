//go:build !nounsafe

package identity

import "unsafe"

func address(cell *byte) uintptr {
	return uintptr(unsafe.Pointer(cell))
}
