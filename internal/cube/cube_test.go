package cube

import (
	"errors"
	"testing"

	"github.com/seamusw/cubesolver/internal/notation"
	"github.com/seamusw/cubesolver/pkg/types"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
}

func TestNewSize(t *testing.T) {
	if _, err := NewSize(3); err != nil {
		t.Errorf("NewSize(3) should succeed, got %v", err)
	}
	for _, n := range []int{0, 1, 2, 4, 5} {
		_, err := NewSize(n)
		if !errors.Is(err, ErrUnsupportedSize) {
			t.Errorf("NewSize(%d) should fail with ErrUnsupportedSize, got %v", n, err)
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := New()
	c.Turn(R, types.TurnCW)
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestFourTurns_ReturnsToSolved_AllFaces(t *testing.T) {
	faces := []Face{U, D, F, B, R, L}
	for _, face := range faces {
		c := New()
		for i := 0; i < 4; i++ {
			c.Turn(face, types.TurnCW)
		}
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(c.String())
		}
	}
}

func TestMoveThenInverse_RestoresState_AllMoves(t *testing.T) {
	// Start from a non-solved state so the test is not trivially satisfied.
	base := New()
	if err := base.ApplyAlgorithm("F U R"); err != nil {
		t.Fatal(err)
	}
	want := base.Key()

	for _, m := range types.AllMoves {
		c := base.Clone()
		c.ApplyMove(m)
		c.ApplyMove(m.Inverse())
		if c.Key() != want {
			t.Errorf("%s then %s should restore the state", m.Notation(), m.Inverse().Notation())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := New()
	for i := 0; i < 6; i++ {
		if err := c.ApplyAlgorithm("R U R' U'"); err != nil {
			t.Fatal(err)
		}
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestStickerConservation(t *testing.T) {
	c := New()
	for _, m := range types.AllMoves {
		c.ApplyMove(m)
		counts := map[Color]int{}
		for f := 0; f < 6; f++ {
			for i := 0; i < 9; i++ {
				counts[c.Facelets[f][i]]++
			}
		}
		for color := Color(0); color < 6; color++ {
			if counts[color] != 9 {
				t.Fatalf("after %s: color %s has %d stickers, want 9", m.Notation(), color, counts[color])
			}
		}
	}
}

func TestReverseSequence_RestoresSolved(t *testing.T) {
	c := New()
	moves, err := notation.ParseAlgorithm("R U R' U' F D L'")
	if err != nil {
		t.Fatal(err)
	}
	c.ApplyMoves(moves)
	if c.IsSolved() {
		t.Fatal("Cube should be scrambled")
	}

	c.ApplyMoves(notation.Reverse(moves))
	if !c.IsSolved() {
		t.Error("Applying the reverse-inverse sequence should restore solved")
		t.Log(c.String())
	}
}

func TestReset(t *testing.T) {
	c := New()
	if err := c.ApplyAlgorithm("R U R' U'"); err != nil {
		t.Fatal(err)
	}
	c.Reset()
	if !c.IsSolved() {
		t.Error("Cube should be solved after Reset")
	}

	// Reset on an already solved cube keeps it solved.
	c.Reset()
	if !c.IsSolved() {
		t.Error("Reset on a solved cube should keep it solved")
	}
}

func TestIsSolved_AcceptsPermutedUniformFaces(t *testing.T) {
	// Faces that are internally uniform count as solved even when the
	// face/color assignment differs from the canonical one.
	c := New()
	c.Facelets[U], c.Facelets[D] = c.Facelets[D], c.Facelets[U]
	if !c.IsSolved() {
		t.Error("Uniform-but-permuted faces should count as solved")
	}
}

func TestApplyAlgorithm_FailFastKeepsPriorMoves(t *testing.T) {
	c := New()
	err := c.ApplyAlgorithm("R X U")
	if !errors.Is(err, notation.ErrInvalidMove) {
		t.Fatalf("want ErrInvalidMove, got %v", err)
	}

	// The valid prefix must have been applied.
	want := New()
	want.Turn(R, types.TurnCW)
	if c.Key() != want.Key() {
		t.Error("Cube should hold exactly the moves before the invalid token")
	}
}

func TestApplyAlgorithm_EmptyIsNoop(t *testing.T) {
	c := New()
	if err := c.ApplyAlgorithm(""); err != nil {
		t.Fatalf("empty algorithm should be a no-op, got %v", err)
	}
	if !c.IsSolved() {
		t.Error("Cube should still be solved")
	}
}

func TestClone_IsIndependent(t *testing.T) {
	c := New()
	clone := c.Clone()
	clone.Turn(R, types.TurnCW)
	if !c.IsSolved() {
		t.Error("Mutating a clone must not touch the original")
	}
}

func TestKey_EqualityTracksState(t *testing.T) {
	a := New()
	b := New()
	if a.Key() != b.Key() {
		t.Error("Two solved cubes should have equal keys")
	}

	if err := a.ApplyAlgorithm("F U"); err != nil {
		t.Fatal(err)
	}
	if a.Key() == b.Key() {
		t.Error("Scrambled and solved cubes should have different keys")
	}

	if err := b.ApplyAlgorithm("F U"); err != nil {
		t.Fatal(err)
	}
	if a.Key() != b.Key() {
		t.Error("Same scramble should produce the same key")
	}
}

func TestFaces_ViewMatchesAndDoesNotAlias(t *testing.T) {
	c := New()
	if err := c.ApplyAlgorithm("R U"); err != nil {
		t.Fatal(err)
	}

	faces := c.Faces()
	for f := 0; f < 6; f++ {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if faces[f][row][col] != c.Facelets[f][row*3+col] {
					t.Fatalf("view mismatch at face %d (%d,%d)", f, row, col)
				}
			}
		}
	}

	key := c.Key()
	faces[0][0][0] = Orange
	if c.Key() != key {
		t.Error("Mutating the view must not change the cube")
	}
}
