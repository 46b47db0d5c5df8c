// Package uci is a minimal synchronous front-end speaking the subset of
// the Universal Chess Interface protocol this engine supports. Unlike a
// full engine's async "go" loop, search here never yields: a "go"
// command runs the fixed-depth search to completion inline and prints
// bestmove directly, matching the engine core's single-threaded,
// non-cancellable scheduling model.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/talon-chess/talon/pkg/chess"
	"github.com/talon-chess/talon/pkg/search"
)

// DefaultDepth is the fixed search depth every "go" command runs at;
// there is no iterative deepening or time control to derive it from.
const DefaultDepth = 5

// Protocol drives the command loop; Name/Author identify the engine in
// response to "uci".
type Protocol struct {
	Name   string
	Author string
	Depth  int
	pos    *chess.Position
	out    io.Writer
	logger *log.Logger
}

// New builds a Protocol at the standard starting position.
func New(name, author string, out io.Writer, logger *log.Logger) *Protocol {
	return &Protocol{
		Name:   name,
		Author: author,
		Depth:  DefaultDepth,
		pos:    chess.NewPosition(),
		out:    out,
		logger: logger,
	}
}

// Run reads commands from in until "quit" or EOF, dispatching each line.
func (p *Protocol) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			return
		}
		if err := p.handle(line); err != nil {
			p.logger.Println(err)
		}
	}
}

func (p *Protocol) handle(line string) error {
	fields := strings.Fields(line)
	command, args := fields[0], fields[1:]

	switch command {
	case "uci":
		return p.uciCommand()
	case "isready":
		fmt.Fprintln(p.out, "readyok")
		return nil
	case "ucinewgame":
		p.pos = chess.NewPosition()
		return nil
	case "position":
		return p.positionCommand(args)
	case "go":
		return p.goCommand(args)
	default:
		p.logger.Printf("unknown command %q\n", command)
		return nil
	}
}

func (p *Protocol) uciCommand() error {
	fmt.Fprintf(p.out, "id name %s\n", p.Name)
	fmt.Fprintf(p.out, "id author %s\n", p.Author)
	fmt.Fprintln(p.out, "uciok")
	return nil
}

// positionCommand handles "position [startpos|fen <FEN>] [moves ...]".
// A parse failure leaves p.pos untouched rather than half-applied.
func (p *Protocol) positionCommand(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uci: position requires arguments")
	}

	var pos *chess.Position
	var rest []string

	switch args[0] {
	case "startpos":
		pos = chess.NewPosition()
		rest = args[1:]
	case "fen":
		rest = args[1:]
		end := len(rest)
		for i, f := range rest {
			if f == "moves" {
				end = i
				break
			}
		}
		if end < 6 {
			return fmt.Errorf("uci: fen requires 6 fields")
		}
		fen := strings.Join(rest[:end], " ")
		var err error
		pos, err = chess.NewPositionFromFEN(fen)
		if err != nil {
			return err
		}
		rest = rest[end:]
	default:
		return fmt.Errorf("uci: unrecognized position argument %q", args[0])
	}

	if len(rest) > 0 {
		if rest[0] != "moves" {
			return fmt.Errorf("uci: expected 'moves', got %q", rest[0])
		}
		for _, moveText := range rest[1:] {
			m, err := chess.ParseMoveLAN(moveText)
			if err != nil {
				return err
			}
			if !isLegal(pos, m) {
				return fmt.Errorf("uci: %w: %s", chess.ErrIllegalMove, moveText)
			}
			pos.Make(m)
		}
	}

	p.pos = pos
	return nil
}

func isLegal(pos *chess.Position, m chess.Move) bool {
	legal := chess.GenerateLegalMoves(pos)
	for i := 0; i < legal.Len(); i++ {
		if legal.At(i) == m {
			return true
		}
	}
	return false
}

// goCommand ignores every UCI search-limit keyword (movetime, depth,
// wtime, ...) except depth: the core always runs one fixed-depth search
// to completion, per scope.
func (p *Protocol) goCommand(args []string) error {
	depth := p.Depth
	for i := 0; i+1 < len(args); i++ {
		if args[i] == "depth" {
			if d, err := strconv.Atoi(args[i+1]); err == nil {
				depth = d
			}
		}
	}

	result := search.Search(p.pos, depth)
	if result.BestMove.IsZero() {
		fmt.Fprintln(p.out, "bestmove 0000")
		return nil
	}
	fmt.Fprintf(p.out, "bestmove %s\n", result.BestMove)
	return nil
}
