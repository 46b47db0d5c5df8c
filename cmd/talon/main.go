// Command talon is a UCI-compatible chess engine driven by a fixed-depth
// alpha-beta search over a bit-parallel board representation.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/talon-chess/talon/pkg/uci"
)

const (
	engineName   = "Talon"
	engineAuthor = "Talon contributors"
)

func main() {
	depth := flag.Int("depth", uci.DefaultDepth, "fixed search depth")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	protocol := uci.New(engineName, engineAuthor, os.Stdout, logger)
	protocol.Depth = *depth
	protocol.Run(os.Stdin)
}
