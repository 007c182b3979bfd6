// Package types contains shared type definitions for the cubesolver application.
package types

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Turn represents the direction of a quarter turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
)

// Move represents a single cube move with face and turn direction.
type Move struct {
	Face Face `json:"face"`
	Turn Turn `json:"turn"`
}

// AllMoves enumerates the 12 legal quarter turns in a fixed order.
// Search strategies iterate this slice so expansion order is deterministic.
var AllMoves = []Move{
	{FaceF, TurnCW}, {FaceF, TurnCCW},
	{FaceB, TurnCW}, {FaceB, TurnCCW},
	{FaceU, TurnCW}, {FaceU, TurnCCW},
	{FaceD, TurnCW}, {FaceD, TurnCCW},
	{FaceL, TurnCW}, {FaceL, TurnCCW},
	{FaceR, TurnCW}, {FaceR, TurnCCW},
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', U, U'
func (m Move) Notation() string {
	if m.Turn == TurnCCW {
		return string(m.Face) + "'"
	}
	return string(m.Face)
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
	}
	return inv
}
