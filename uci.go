package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"github.com/SNKLP03/chessV3/engine"
)

// uciLoop reads one command per line and answers on w. It owns the game
// board; the search core only ever borrows it. A malformed move token in a
// position command aborts the loop with an error, matching the original
// engine's fatal handling of bad protocol input.
func uciLoop(r io.Reader, w io.Writer, cfg Config) error {
	scanner := bufio.NewScanner(r)
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(w, "id name chessV3")
			fmt.Fprintln(w, "id author SNKLP")
			fmt.Fprintln(w, "uciok")
		case "isready":
			fmt.Fprintln(w, "readyok")
		case "ucinewgame":
			board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
		case "position":
			if err := handlePosition(&board, tokens); err != nil {
				return err
			}
		case "go":
			start := time.Now()
			outcome := engine.FindBestMove(&board, cfg.Depth, cfg.MoveTime)
			if !outcome.HasMove {
				fmt.Fprintln(w, "bestmove (none)")
				continue
			}
			fmt.Fprintln(w, "info depth", cfg.Depth,
				"score cp", int32(outcome.Score),
				"nodes", outcome.Nodes,
				"time", time.Since(start).Milliseconds())
			fmt.Fprintln(w, "bestmove", outcome.Move.String())
		case "quit":
			return nil
		default:
			fmt.Fprintln(w, "info string Unknown command:", line)
		}
	}
	return scanner.Err()
}

// handlePosition resets the board from startpos or a FEN string and replays
// any trailing move list.
func handlePosition(board *dragontoothmg.Board, tokens []string) error {
	if len(tokens) < 2 {
		return errors.New("malformed position command")
	}

	var rest []string
	switch strings.ToLower(tokens[1]) {
	case "startpos":
		*board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
		rest = tokens[2:]
	case "fen":
		end := len(tokens)
		for i := 2; i < len(tokens); i++ {
			if strings.ToLower(tokens[i]) == "moves" {
				end = i
				break
			}
		}
		if end == 2 {
			return errors.New("position fen: missing fen string")
		}
		*board = dragontoothmg.ParseFen(strings.Join(tokens[2:end], " "))
		rest = tokens[end:]
	default:
		return fmt.Errorf("unknown position subcommand %q", tokens[1])
	}

	if len(rest) == 0 {
		return nil
	}
	if strings.ToLower(rest[0]) != "moves" {
		return fmt.Errorf("unexpected token %q in position command", rest[0])
	}
	for _, moveStr := range rest[1:] {
		move, ok := findMove(board, strings.ToLower(moveStr))
		if !ok {
			return fmt.Errorf("move %s not legal for position %s", moveStr, board.ToFen())
		}
		board.Apply(move)
	}
	return nil
}

// findMove resolves a long-algebraic move string against the board's legal
// moves.
func findMove(board *dragontoothmg.Board, moveStr string) (dragontoothmg.Move, bool) {
	for _, mv := range board.GenerateLegalMoves() {
		if mv.String() == moveStr {
			return mv, true
		}
	}
	return 0, false
}
