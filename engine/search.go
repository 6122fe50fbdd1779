package engine

import "github.com/dylhunn/dragontoothmg"

// AlphaBeta runs a depth-limited minimax search with alpha-beta pruning and
// returns the score of the position. The maximizing flag must match the
// caller's scoring convention for the node; it is not validated against the
// board. Every move applied during the search is undone before the function
// returns, including on beta cutoffs, so the caller's board is left exactly
// as it was.
func AlphaBeta(b *dragontoothmg.Board, depth int, alpha, beta Score, maximizing bool) Score {
	var nodes uint64
	return alphaBeta(b, depth, alpha, beta, maximizing, &nodes)
}

func alphaBeta(b *dragontoothmg.Board, depth int, alpha, beta Score, maximizing bool, nodes *uint64) Score {
	*nodes++

	if depth == 0 || IsGameOver(b) {
		return Evaluate(b)
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		// Should coincide with IsGameOver above; kept as a fallback.
		return Evaluate(b)
	}

	if maximizing {
		best := -Infinity
		for _, move := range moves {
			unapply := b.Apply(move)
			score := alphaBeta(b, depth-1, alpha, beta, false, nodes)
			unapply()
			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := Infinity
	for _, move := range moves {
		unapply := b.Apply(move)
		score := alphaBeta(b, depth-1, alpha, beta, true, nodes)
		unapply()
		if score < best {
			best = score
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
