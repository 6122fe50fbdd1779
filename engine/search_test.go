package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// minimax is an unpruned reference search with the same scoring conventions
// as AlphaBeta.
func minimax(b *dragontoothmg.Board, depth int, maximizing bool) Score {
	if depth == 0 || IsGameOver(b) {
		return Evaluate(b)
	}
	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		return Evaluate(b)
	}

	if maximizing {
		best := -Infinity
		for _, move := range moves {
			unapply := b.Apply(move)
			score := minimax(b, depth-1, false)
			unapply()
			if score > best {
				best = score
			}
		}
		return best
	}

	best := Infinity
	for _, move := range moves {
		unapply := b.Apply(move)
		score := minimax(b, depth-1, true)
		unapply()
		if score < best {
			best = score
		}
	}
	return best
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
	}{
		{"rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2", 3},
		{"r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4", 3},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2},
		{"8/2k5/3p4/p2P1p2/P2P1P2/8/8/4K3 b - - 0 1", 3},
	}
	for _, tt := range tests {
		for _, maximizing := range []bool{true, false} {
			b := dragontoothmg.ParseFen(tt.fen)
			want := minimax(&b, tt.depth, maximizing)
			got := AlphaBeta(&b, tt.depth, -Infinity, Infinity, maximizing)
			if got != want {
				t.Errorf("AlphaBeta(%s, depth=%d, maximizing=%v) = %d, want minimax %d",
					tt.fen, tt.depth, maximizing, got, want)
			}
		}
	}
}

func TestAlphaBetaRestoresBoard(t *testing.T) {
	fen := "r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4"
	b := dragontoothmg.ParseFen(fen)
	AlphaBeta(&b, 3, -Infinity, Infinity, true)
	if got := b.ToFen(); got != fen {
		t.Fatalf("board changed by search: got %q, want %q", got, fen)
	}
}

func TestAlphaBetaDepthZeroEvaluates(t *testing.T) {
	b := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	want := Evaluate(&b)
	if got := AlphaBeta(&b, 0, -Infinity, Infinity, true); got != want {
		t.Fatalf("AlphaBeta(depth=0) = %d, want Evaluate %d", got, want)
	}
}

func TestAlphaBetaTerminalPosition(t *testing.T) {
	// Fool's mate: the search must return the evaluation immediately.
	b := dragontoothmg.ParseFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if got := AlphaBeta(&b, 3, -Infinity, Infinity, true); got != -CheckmateScore {
		t.Fatalf("AlphaBeta(mate) = %d, want %d", got, -CheckmateScore)
	}
}
