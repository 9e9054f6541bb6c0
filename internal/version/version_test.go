// ABOUTME: Tests for version constants
// ABOUTME: Ensures product identification is defined
package version

import "testing"

func TestConstantsDefined(t *testing.T) {
	if Product == "" {
		t.Error("Product should not be empty")
	}
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if Manufacturer == "" {
		t.Error("Manufacturer should not be empty")
	}
}
