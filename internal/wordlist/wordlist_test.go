package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeList(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     []string
		wantErr  bool
	}{
		{
			name:     "lowercases and skips comments and blanks",
			contents: "# header\nCAT\n\n  arc  \nten\n",
			want:     []string{"cat", "arc", "ten"},
		},
		{
			name:     "rejects non-letter characters",
			contents: "cat\nc4t\n",
			wantErr:  true,
		},
		{
			name:     "empty file",
			contents: "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeList(t, tt.contents))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("words mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Load() error = nil, want error")
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize([]string{" CAT ", "", "Arc"})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if diff := cmp.Diff([]string{"cat", "arc"}, got); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}

	if _, err := Normalize([]string{"c-t"}); err == nil {
		t.Error("Normalize() error = nil, want error")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("cat"); err != nil {
		t.Errorf("Validate(cat) error = %v", err)
	}
	for _, word := range []string{"CAT", "c4t", "c-t", "naïve"} {
		if err := Validate(word); err == nil {
			t.Errorf("Validate(%s) error = nil, want error", word)
		}
	}
}

func TestByLength(t *testing.T) {
	got := ByLength([]string{"cat", "arc", "to", "seven"})
	want := map[int][]string{
		2: {"to"},
		3: {"cat", "arc"},
		5: {"seven"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("buckets mismatch (-want +got):\n%s", diff)
	}
}
