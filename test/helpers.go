// Package test contains helpers shared by the tests of all packages.
package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// RandomName returns a unique name for resources that need one.
func RandomName() string {
	return uuid.New().String()
}
