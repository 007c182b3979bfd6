// Package notation provides move notation parsing and formatting.
//
// The grammar is one face letter in {F, B, U, D, L, R}, optionally followed
// by a single apostrophe for a counter-clockwise turn. Tokens in an
// algorithm string are separated by whitespace.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seamusw/cubesolver/pkg/types"
)

// ErrInvalidMove is returned for tokens that do not match the move grammar.
var ErrInvalidMove = errors.New("notation: invalid move token")

// ParseMove parses a single move token.
// Examples: R, R', U, U'
func ParseMove(token string) (types.Move, error) {
	if len(token) == 0 {
		return types.Move{}, fmt.Errorf("%w: empty token", ErrInvalidMove)
	}

	var face types.Face
	switch token[0] {
	case 'R':
		face = types.FaceR
	case 'L':
		face = types.FaceL
	case 'U':
		face = types.FaceU
	case 'D':
		face = types.FaceD
	case 'F':
		face = types.FaceF
	case 'B':
		face = types.FaceB
	default:
		return types.Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, token)
	}

	turn := types.TurnCW
	if len(token) > 1 {
		if token[1:] != "'" {
			return types.Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, token)
		}
		turn = types.TurnCCW
	}

	return types.Move{Face: face, Turn: turn}, nil
}

// ParseAlgorithm parses a whitespace-separated sequence of move tokens.
// An empty string yields zero moves. Parsing fails on the first invalid
// token.
func ParseAlgorithm(s string) ([]types.Move, error) {
	fields := strings.Fields(s)
	moves := make([]types.Move, 0, len(fields))
	for _, tok := range fields {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated string.
func FormatMoves(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// Reverse returns the sequence that undoes the given one: each move is
// replaced by its inverse and the order is reversed.
func Reverse(moves []types.Move) []types.Move {
	out := make([]types.Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}
