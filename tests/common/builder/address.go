//go:build unit || e2e

package builder

import (
	"fmt"

	"asset-factory/internal/pkg/address"
)

// Addr derives a deterministic address for a test label.
func Addr(label string) address.Address {
	return address.Derive("test", []byte(label))
}

// Addrf is Addr with a formatted label.
func Addrf(format string, args ...any) address.Address {
	return Addr(fmt.Sprintf(format, args...))
}
