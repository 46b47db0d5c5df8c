package uci

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/talon-chess/talon/pkg/chess"
)

func newTestProtocol() (*Protocol, *bytes.Buffer) {
	var out bytes.Buffer
	logger := log.New(io.Discard, "", 0)
	return New("Talon", "test", &out, logger), &out
}

func TestUciCommandAnnouncesIdentity(t *testing.T) {
	p, out := newTestProtocol()
	p.Run(strings.NewReader("uci\n"))

	got := out.String()
	for _, want := range []string{"id name Talon", "id author test", "uciok"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}

func TestIsReadyRespondsReadyOk(t *testing.T) {
	p, out := newTestProtocol()
	p.Run(strings.NewReader("isready\n"))
	if got := strings.TrimSpace(out.String()); got != "readyok" {
		t.Errorf("output = %q, want readyok", got)
	}
}

func TestPositionStartposWithMoves(t *testing.T) {
	p, _ := newTestProtocol()
	p.Run(strings.NewReader("position startpos moves e2e4 e7e5\n"))

	want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2"
	if got := p.pos.String(); got != want {
		t.Errorf("position after e2e4 e7e5 = %q, want %q", got, want)
	}
}

func TestPositionIllegalMoveLeavesPreviousPositionUntouched(t *testing.T) {
	p, out := newTestProtocol()
	before := p.pos.String()

	p.Run(strings.NewReader("position startpos moves e2e5\n"))

	if got := p.pos.String(); got != before {
		t.Errorf("position mutated after illegal move: got %q, want %q", got, before)
	}
	if out.Len() == 0 {
		t.Skip("errors are logged, not written to out")
	}
}

func TestPositionFEN(t *testing.T) {
	p, _ := newTestProtocol()
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p.Run(strings.NewReader("position fen " + fen + "\n"))
	if got := p.pos.String(); got != fen {
		t.Errorf("position fen round trip = %q, want %q", got, fen)
	}
}

func TestGoCommandPrintsBestMove(t *testing.T) {
	p, out := newTestProtocol()
	p.Depth = 2
	p.pos, _ = chess.NewPositionFromFEN("6k1/5ppp/8/8/8/8/8/4R2K w - - 0 1")

	p.Run(strings.NewReader("go\n"))

	if got := strings.TrimSpace(out.String()); got != "bestmove e1e8" {
		t.Errorf("output = %q, want bestmove e1e8", got)
	}
}

func TestGoCommandDepthOverride(t *testing.T) {
	p, out := newTestProtocol()
	p.Depth = 5
	p.pos, _ = chess.NewPositionFromFEN("6k1/5ppp/8/8/8/8/8/4R2K w - - 0 1")

	p.Run(strings.NewReader("go depth 2\n"))

	if got := strings.TrimSpace(out.String()); got != "bestmove e1e8" {
		t.Errorf("output = %q, want bestmove e1e8", got)
	}
}
