package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// Score is a centipawn evaluation, expressed relative to the side to move
// (positive means the side to move is better).
type Score int32

const (
	// CheckmateScore is the sentinel magnitude for a mated side to move.
	CheckmateScore Score = 99999
	// DrawScore covers stalemate and insufficient material.
	DrawScore Score = 0
	// Infinity bounds the alpha-beta window; wider than any real score.
	Infinity Score = 1000000
)

var pieceValue = [7]Score{
	dragontoothmg.Pawn:   100,
	dragontoothmg.Knight: 320,
	dragontoothmg.Bishop: 330,
	dragontoothmg.Rook:   500,
	dragontoothmg.Queen:  900,
	dragontoothmg.King:   20000,
}

// Piece-square tables, indexed by square for White and by the vertically
// mirrored square (sq^56) for Black. Index 0 is a1.
var pawnPST = [64]Score{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]Score{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var kingPST = [64]Score{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

// Sliders share the knight table.
var pieceSquareTable = [7][64]Score{
	dragontoothmg.Pawn:   pawnPST,
	dragontoothmg.Knight: knightPST,
	dragontoothmg.Bishop: knightPST,
	dragontoothmg.Rook:   knightPST,
	dragontoothmg.Queen:  knightPST,
	dragontoothmg.King:   kingPST,
}

// Evaluate scores the position relative to the side to move. A mated side to
// move always sees -CheckmateScore; stalemate and insufficient material score
// zero. Otherwise the score is material plus piece placement.
func Evaluate(b *dragontoothmg.Board) Score {
	if len(b.GenerateLegalMoves()) == 0 {
		if b.OurKingInCheck() {
			return -CheckmateScore
		}
		return DrawScore
	}
	if InsufficientMaterial(b) {
		return DrawScore
	}

	total := sideScore(&b.White, true) - sideScore(&b.Black, false)

	if b.Wtomove {
		return total
	}
	return -total
}

func sideScore(bb *dragontoothmg.Bitboards, white bool) Score {
	var total Score
	total += pieceScore(bb.Pawns, dragontoothmg.Pawn, white)
	total += pieceScore(bb.Knights, dragontoothmg.Knight, white)
	total += pieceScore(bb.Bishops, dragontoothmg.Bishop, white)
	total += pieceScore(bb.Rooks, dragontoothmg.Rook, white)
	total += pieceScore(bb.Queens, dragontoothmg.Queen, white)
	total += pieceScore(bb.Kings, dragontoothmg.King, white)
	return total
}

func pieceScore(pieces uint64, piece dragontoothmg.Piece, white bool) Score {
	var total Score
	for pieces != 0 {
		sq := bits.TrailingZeros64(pieces)
		pieces &= pieces - 1
		idx := sq
		if !white {
			idx = sq ^ 56
		}
		total += pieceValue[piece] + pieceSquareTable[piece][idx]
	}
	return total
}
