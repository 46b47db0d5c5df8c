// Command perft runs the standard perft correctness suite and reports
// node counts per position and depth. The five named positions are
// independent, so they run concurrently.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/talon-chess/talon/pkg/chess"
)

type suiteCase struct {
	name  string
	fen   string
	depth int
	want  []uint64
}

var suite = []suiteCase{
	{
		name:  "startpos",
		fen:   chess.InitialFEN,
		depth: 6,
		want:  []uint64{20, 400, 8902, 197281, 4865609, 119060324},
	},
	{
		name:  "kiwipete",
		fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		depth: 3,
		want:  []uint64{48, 2039, 97862},
	},
	{
		name:  "position4",
		fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		depth: 4,
		want:  []uint64{6, 264, 9467, 422333},
	},
	{
		name:  "position5",
		fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		depth: 5,
		want:  []uint64{44, 1486, 62379, 2103487, 89941194},
	},
	{
		name:  "edwards",
		fen:   "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		depth: 5,
		want:  []uint64{46, 2079, 89890, 3894594, 164075551},
	},
}

func main() {
	maxDepth := flag.Int("maxdepth", 0, "cap every suite case at this depth (0 = run each case's full depth)")
	flag.Parse()

	var g errgroup.Group
	results := make([][]uint64, len(suite))

	for i, c := range suite {
		i, c := i, c
		g.Go(func() error {
			depth := c.depth
			if *maxDepth > 0 && *maxDepth < depth {
				depth = *maxDepth
			}
			pos, err := chess.NewPositionFromFEN(c.fen)
			if err != nil {
				return fmt.Errorf("%s: %w", c.name, err)
			}
			counts := make([]uint64, depth)
			for d := 1; d <= depth; d++ {
				start := time.Now()
				counts[d-1] = chess.Perft(pos, d)
				log.Printf("%-10s depth %d: %d nodes (%s)", c.name, d, counts[d-1], time.Since(start))
			}
			results[i] = counts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	failed := false
	for i, c := range suite {
		for d, got := range results[i] {
			if d < len(c.want) && got != c.want[d] {
				fmt.Printf("MISMATCH %s depth %d: got %d want %d\n", c.name, d+1, got, c.want[d])
				failed = true
			}
		}
	}
	if failed {
		os.Exit(1)
	}
	fmt.Println("all perft counts matched")
}
