package cli

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/idelchi/dirdiff/internal/dirdiff"
)

func TestSortedExtensions(t *testing.T) {
	t.Parallel()

	got := sortedExtensions(map[string]int{".png": 1, ".jpg": 3, "": 1, ".mp4": 3})
	want := []string{".jpg", ".mp4", "", ".png"}

	if !slices.Equal(got, want) {
		t.Fatalf("sortedExtensions = %v, want %v", got, want)
	}
}

func TestPrintReport(t *testing.T) {
	t.Parallel()

	report := &dirdiff.Report{
		Diff: dirdiff.Diff{
			RootA:   "/a",
			RootB:   "/b",
			OnlyInB: []string{"/b/d.png"},
		},
		CountsA:      map[string]int{".jpg": 2},
		CountsB:      map[string]int{".jpg": 1, ".png": 1, "": 1},
		FilesScanned: 7,
	}

	var buf bytes.Buffer
	if err := PrintReport(report, &buf); err != nil {
		t.Fatalf("PrintReport returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Extensions in '/a':",
		".jpg:",
		"2 files",
		`"":`,
		"Only in '/a' (0):",
		"Only in '/b' (1):",
		"'/b/d.png'",
		"Files scanned:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintJSONReport(t *testing.T) {
	t.Parallel()

	report := &dirdiff.Report{
		Diff:    dirdiff.Diff{RootA: "/a", RootB: "/b", OnlyInA: []string{"/a/x"}, OnlyInB: []string{}},
		CountsA: map[string]int{"": 1},
		CountsB: map[string]int{},
	}

	var buf bytes.Buffer
	if err := PrintJSON(report, &buf); err != nil {
		t.Fatalf("PrintJSON returned error: %v", err)
	}

	var decoded struct {
		RootA   string         `json:"root_a"`
		OnlyInA []string       `json:"only_in_a"`
		CountsA map[string]int `json:"counts_a"`
	}

	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding output: %v", err)
	}

	if decoded.RootA != "/a" || !slices.Equal(decoded.OnlyInA, []string{"/a/x"}) || decoded.CountsA[""] != 1 {
		t.Fatalf("unexpected JSON: %s", buf.String())
	}
}
