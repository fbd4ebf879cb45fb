package dirdiff

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTree creates empty files at the given slash-separated relative paths.
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()

	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}

		if err := os.WriteFile(path, []byte(f), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

func equalCounts(got, want map[string]int) bool {
	if len(got) != len(want) {
		return false
	}

	for k, v := range want {
		if got[k] != v {
			return false
		}
	}

	return true
}
