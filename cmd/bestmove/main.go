// Command bestmove prints the move the bot would play in a position.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/chessbot/game"
	"github.com/chessbot/search"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	fen       = flag.String("fen", game.StartFEN, "position to analyze")
	remaining = flag.Duration("time", time.Minute, "time left on the clock")
	seed      = flag.Int64("seed", 0, "tie-break seed, 0 for unseeded")
	dot       = flag.String("dot", "", "write the ranked root moves as a DOT graph to this file")
	debug     = flag.Bool("debug", false, "log search statistics")
)

func main() {
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	pos, err := game.FromFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Msg("bad position")
	}

	opts := []search.Option{search.WithLogger(log.Logger)}
	if *seed != 0 {
		opts = append(opts, search.WithSource(rand.New(rand.NewSource(*seed))))
	}
	e := search.New(search.DefaultConfig(), opts...)

	m, analyzed := e.Decide(pos, *remaining)
	if m == nil {
		log.Fatal().Str("fen", pos.FEN()).Msg("no legal move")
	}
	fmt.Println(m)

	if *dot == "" {
		return
	}
	if analyzed == nil {
		log.Info().Str("move", m.String()).Msg("opening move played without search, no graph written")
		return
	}
	graph, err := search.Graph(pos.FEN(), analyzed)
	if err != nil {
		log.Fatal().Err(err).Msg("build graph")
	}
	if err := os.WriteFile(*dot, []byte(graph), 0644); err != nil {
		log.Fatal().Err(err).Str("file", *dot).Msg("write graph")
	}
}
