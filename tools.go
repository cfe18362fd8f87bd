//go:build tools

package tools

// mockery v2 is used as an installed binary; .mockery.yaml lists the
// interfaces it mocks. Run: mockery (from the module root).
