package xwfill

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"crosswarped.com/xwfill/pkg/puzzle"
)

func TestLetterGrid_Repr(t *testing.T) {
	p := mustParse(t, crossing, []string{"cat", "arc"})

	across := puzzle.Slot{Row: 0, Col: 0, Dir: puzzle.DirectionAcross, Length: 3}
	down := puzzle.Slot{Row: 0, Col: 1, Dir: puzzle.DirectionDown, Length: 3}

	tests := []struct {
		name string
		a    Assignment
		want string
	}{
		{
			name: "complete assignment",
			a:    Assignment{across: "cat", down: "arc"},
			want: "cat\n█r█\n█c█",
		},
		{
			name: "partial assignment leaves blanks",
			a:    Assignment{across: "cat"},
			want: "cat\n█ █\n█ █",
		},
		{
			name: "empty assignment shows the structure",
			a:    Assignment{},
			want: "   \n█ █\n█ █",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LetterGrid(p, tt.a).Repr()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Repr() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGrid_Dimensions(t *testing.T) {
	p := mustParse(t, crossing, []string{"cat"})
	g := LetterGrid(p, Assignment{})

	if g.Width() != 3 {
		t.Errorf("Width() = %d, want 3", g.Width())
	}
	if g.Height() != 3 {
		t.Errorf("Height() = %d, want 3", g.Height())
	}
	if g.Get(0, 1) != blockedCell {
		t.Errorf("Get(0,1) = %q, want blocked", g.Get(0, 1))
	}
}

func TestGrid_SavePNG(t *testing.T) {
	p := mustParse(t, crossing, []string{"cat", "arc"})
	across := puzzle.Slot{Row: 0, Col: 0, Dir: puzzle.DirectionAcross, Length: 3}
	down := puzzle.Slot{Row: 0, Col: 1, Dir: puzzle.DirectionDown, Length: 3}
	g := LetterGrid(p, Assignment{across: "cat", down: "arc"})

	path := filepath.Join(t.TempDir(), "fill.png")
	if err := g.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("os.Stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("SavePNG() wrote an empty file")
	}
}
