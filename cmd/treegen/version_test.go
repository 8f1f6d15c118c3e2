package main

import "testing"

func TestVersionIsNeverEmpty(t *testing.T) {
	if version == "" {
		t.Error("version is empty; expected ldflags value or build-info fallback")
	}
	if got := vcsVersion(); got == "" {
		t.Error("vcsVersion() returned empty string, want at least the dev fallback")
	}
}
