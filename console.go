package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog/log"

	"github.com/SNKLP03/chessV3/engine"
)

// playLoop runs an interactive game on the console. The human plays White,
// the engine plays Black.
func playLoop(r io.Reader, w io.Writer, cfg Config) {
	scanner := bufio.NewScanner(r)
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)

	fmt.Fprintln(w, "Welcome to chessV3! You play White. Enter moves like 'e2e4' or 'e7e8q'.")
	fmt.Fprintln(w, renderBoard(&board))

	for !engine.IsGameOver(&board) {
		if board.Wtomove {
			move, ok := promptMove(scanner, w, &board)
			if !ok { // input closed
				return
			}
			board.Apply(move)
		} else {
			fmt.Fprintln(w, "Engine thinking...")
			log.Debug().Str("fen", board.ToFen()).Msg("position before engine move")
			outcome := engine.FindBestMove(&board, cfg.PlayDepth, cfg.PlayMoveTime)
			if !outcome.HasMove {
				fmt.Fprintln(w, "Engine has no moves!")
				break
			}
			board.Apply(outcome.Move)
			fmt.Fprintln(w, "Engine move:", outcome.Move.String())
		}
		fmt.Fprintln(w, renderBoard(&board))
	}

	fmt.Fprintln(w, "Game over! Result:", engine.Result(&board))
}

// promptMove reads moves until one is legal on the board. Returns false when
// the input stream ends.
func promptMove(scanner *bufio.Scanner, w io.Writer, board *dragontoothmg.Board) (dragontoothmg.Move, bool) {
	for {
		fmt.Fprint(w, "Your move: ")
		if !scanner.Scan() {
			return 0, false
		}
		text := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if text == "" {
			continue
		}
		if move, ok := findMove(board, text); ok {
			return move, true
		}
		fmt.Fprintln(w, "Illegal move. Use long algebraic notation (e.g. 'e2e4' or 'e7e8q').")
	}
}

var pieceGlyphs = [7]byte{
	dragontoothmg.Pawn:   'p',
	dragontoothmg.Knight: 'n',
	dragontoothmg.Bishop: 'b',
	dragontoothmg.Rook:   'r',
	dragontoothmg.Queen:  'q',
	dragontoothmg.King:   'k',
}

// renderBoard draws the position from White's point of view, uppercase for
// White's pieces.
func renderBoard(b *dragontoothmg.Board) string {
	var builder strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&builder, "%d |", rank+1)
		for file := 0; file < 8; file++ {
			sq := uint8(rank*8 + file)
			glyph := byte('.')
			if piece, ok := engine.PieceTypeAt(&b.White, sq); ok {
				glyph = pieceGlyphs[piece] - 'a' + 'A'
			} else if piece, ok := engine.PieceTypeAt(&b.Black, sq); ok {
				glyph = pieceGlyphs[piece]
			}
			builder.WriteByte(' ')
			builder.WriteByte(glyph)
		}
		builder.WriteByte('\n')
	}
	builder.WriteString("   ----------------\n")
	builder.WriteString("    a b c d e f g h")
	return builder.String()
}
