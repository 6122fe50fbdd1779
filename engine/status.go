package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// IsCheckmate reports whether the side to move has no legal moves and is in
// check.
func IsCheckmate(b *dragontoothmg.Board) bool {
	return len(b.GenerateLegalMoves()) == 0 && b.OurKingInCheck()
}

// IsStalemate reports whether the side to move has no legal moves and is not
// in check.
func IsStalemate(b *dragontoothmg.Board) bool {
	return len(b.GenerateLegalMoves()) == 0 && !b.OurKingInCheck()
}

// InsufficientMaterial reports positions where neither side can mate: no
// pawns, rooks or queens on the board and at most one minor piece a side.
func InsufficientMaterial(b *dragontoothmg.Board) bool {
	majors := b.White.Pawns | b.Black.Pawns |
		b.White.Rooks | b.Black.Rooks |
		b.White.Queens | b.Black.Queens
	if majors != 0 {
		return false
	}
	// Kings are always present, so <= 2 occupied means at most one minor.
	return bits.OnesCount64(b.White.All) <= 2 && bits.OnesCount64(b.Black.All) <= 2
}

// IsGameOver reports whether the position is terminal for search purposes.
func IsGameOver(b *dragontoothmg.Board) bool {
	return len(b.GenerateLegalMoves()) == 0 || InsufficientMaterial(b)
}

// Result returns the conventional result string for a finished game, or "*"
// if the game is still in progress.
func Result(b *dragontoothmg.Board) string {
	if IsCheckmate(b) {
		if b.Wtomove {
			return "0-1"
		}
		return "1-0"
	}
	if IsStalemate(b) || InsufficientMaterial(b) {
		return "1/2-1/2"
	}
	return "*"
}
