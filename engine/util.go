package engine

import (
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/constraints"
)

// MaxDepth bounds configurable search depth.
const MaxDepth = 100

// Clamp restricts v to the inclusive range [low, high].
func Clamp[T constraints.Ordered](v, low, high T) T {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// PieceTypeAt returns the piece type occupying the given square in the side's
// bitboards, if any.
func PieceTypeAt(bb *dragontoothmg.Bitboards, sq uint8) (dragontoothmg.Piece, bool) {
	if bb.Pawns&(1<<sq) > 0 {
		return dragontoothmg.Pawn, true
	} else if bb.Knights&(1<<sq) > 0 {
		return dragontoothmg.Knight, true
	} else if bb.Bishops&(1<<sq) > 0 {
		return dragontoothmg.Bishop, true
	} else if bb.Rooks&(1<<sq) > 0 {
		return dragontoothmg.Rook, true
	} else if bb.Queens&(1<<sq) > 0 {
		return dragontoothmg.Queen, true
	} else if bb.Kings&(1<<sq) > 0 {
		return dragontoothmg.King, true
	}
	return 0, false
}
