package dirdiff

import (
	"slices"
	"testing"
)

func TestExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"photo.jpg", ".jpg"},
		{"dir/photo.JPG", ".JPG"},
		{"archive.tar.gz", ".gz"},
		{"README", ""},
		{".bashrc", ""},
		{".config.yml", ".yml"},
		{"notes.", ""},
		{"a/b.c/file", ""},
	}

	for _, tt := range tests {
		if got := Ext(tt.path); got != tt.want {
			t.Errorf("Ext(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestIgnoredExtensions(t *testing.T) {
	t.Parallel()

	want := []string{".ini", ".insv", ".log", ".lrv", ".tmp", ".zip"}
	if got := IgnoredExtensions(); !slices.Equal(got, want) {
		t.Fatalf("IgnoredExtensions() = %v, want %v", got, want)
	}

	if Ignorable(".TMP") {
		t.Fatal("Ignorable should compare exactly")
	}
}

func TestFilterSkip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		strict bool
		want   bool
	}{
		{"clip.lrv", false, true},
		{"CLIP.LRV", false, true},
		{"CLIP.LRV", true, false},
		{"clip.lrv", true, true},
		{"clip.mp4", false, false},
		{"setup", false, false},
	}

	for _, tt := range tests {
		f := Filter{StrictCase: tt.strict}
		if got := f.Skip(tt.path); got != tt.want {
			t.Errorf("Filter{StrictCase: %v}.Skip(%q) = %v, want %v", tt.strict, tt.path, got, tt.want)
		}
	}
}
