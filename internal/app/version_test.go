package app

import (
	"strings"
	"testing"
)

func TestBuildVersion(t *testing.T) {
	got := BuildVersion()
	for _, part := range []string{"jobboard", Version, Commit, BuildTime} {
		if !strings.Contains(got, part) {
			t.Errorf("BuildVersion() = %q, missing %q", got, part)
		}
	}
}
