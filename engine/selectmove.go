package engine

import (
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Outcome is the result of a root move selection.
type Outcome struct {
	Move    dragontoothmg.Move
	Score   Score
	HasMove bool
	Nodes   uint64
}

// FindBestMove searches every root move to the given depth and returns the
// best one. The time limit is checked only between root moves, so a single
// deep subtree can overrun it; once it has expired the remaining root moves
// are never evaluated. The caller's board is never mutated: the search runs
// on a detached copy, and the chosen move is re-validated against the live
// board before returning.
func FindBestMove(b *dragontoothmg.Board, depth int, timeLimit time.Duration) Outcome {
	start := time.Now()
	searchBoard := *b

	rootMoves := searchBoard.GenerateLegalMoves()
	if len(rootMoves) == 0 {
		log.Debug().Msg("no legal moves available")
		return Outcome{}
	}

	whiteToMove := searchBoard.Wtomove
	bestScore := Infinity
	if whiteToMove {
		bestScore = -Infinity
	}
	var best dragontoothmg.Move
	var nodes uint64
	found := false

	for _, move := range rootMoves {
		if time.Since(start) > timeLimit {
			log.Debug().Dur("elapsed", time.Since(start)).Msg("time limit reached")
			break
		}
		unapply := searchBoard.Apply(move)
		// The child searches as the maximizer when Black is to move there,
		// i.e. one ply ahead for the side that just moved.
		score := alphaBeta(&searchBoard, depth-1, -Infinity, Infinity, !searchBoard.Wtomove, &nodes)
		unapply()
		log.Debug().Str("move", move.String()).Int32("score", int32(score)).Msg("evaluated root move")

		// Strict comparisons: the first of equally-scored moves wins.
		if whiteToMove {
			if score > bestScore {
				bestScore = score
				best = move
				found = true
			}
		} else {
			if score < bestScore {
				bestScore = score
				best = move
				found = true
			}
		}
	}

	if !found {
		log.Warn().Msg("no root moves evaluated, selecting first legal move")
		best = rootMoves[0]
		bestScore = 0
	}

	// The search ran on a detached copy; make sure the chosen move is still
	// legal on the caller's board before handing it back.
	liveMoves := b.GenerateLegalMoves()
	if !slices.Contains(liveMoves, best) {
		log.Warn().Str("move", best.String()).Str("fen", b.ToFen()).Msg("selected move not legal on live board, falling back")
		if len(liveMoves) == 0 {
			return Outcome{Nodes: nodes}
		}
		best = liveMoves[0]
		bestScore = 0
	}

	return Outcome{Move: best, Score: bestScore, HasMove: true, Nodes: nodes}
}
