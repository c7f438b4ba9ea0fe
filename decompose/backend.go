// SPDX-License-Identifier: MIT

package decompose

import "fmt"

// Backend names accepted by NewBackend.
const (
	BackendGonum  = "gonum"
	BackendJacobi = "jacobi"
)

// NewBackend returns the Backend registered under name with its defaults.
//
// Errors: ErrUnknownBackend.
func NewBackend(name string) (Backend, error) {
	switch name {
	case BackendGonum:
		return GonumBackend{}, nil
	case BackendJacobi:
		return JacobiBackend{}, nil
	default:
		return nil, decomposeErrorf(opNewBackend, fmt.Errorf("%q: %w", name, ErrUnknownBackend))
	}
}
