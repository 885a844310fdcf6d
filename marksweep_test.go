// ABOUTME: Tests for the main marksweep package, verifying project structure and imports
// ABOUTME: These tests ensure the basic package setup is working correctly

package marksweep_test

import (
	"testing"

	"github.com/prateek/marksweep"
)

func TestProjectStructure(t *testing.T) {
	// Verify the version constant exists and is non-empty
	if marksweep.Version == "" {
		t.Error("Version constant should not be empty")
	}

	// Verify version format (should be semantic versioning)
	expectedPrefix := "0."
	if len(marksweep.Version) < len(expectedPrefix) || marksweep.Version[:len(expectedPrefix)] != expectedPrefix {
		t.Errorf("Version should start with %q, got %q", expectedPrefix, marksweep.Version)
	}
}
