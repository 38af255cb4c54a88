// Command selfplay plays a match between the bot and itself, or a UCI
// engine, and reports the score.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/chessbot"
	"github.com/chewxy/math32"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	configPath = flag.String("config", "", "JSON config file, defaults when empty")
	numGames   = flag.Int("games", 2, "number of games to play")
	parallel   = flag.Int("parallel", 1, "games played at the same time")
	uciPath    = flag.String("uci", "", "UCI engine to play against instead of the bot itself")
	pgnPath    = flag.String("pgn", "", "write the games to this PGN file")
	debug      = flag.Bool("debug", false, "log every move")
)

func main() {
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	conf := chessbot.DefaultConfig()
	if *configPath != "" {
		var err error
		if conf, err = chessbot.LoadConfig(*configPath); err != nil {
			log.Fatal().Err(err).Msg("load config")
		}
	}
	if *uciPath != "" {
		conf.Opponent = *uciPath
	}
	if err := conf.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bot := chessbot.New(conf, log.Logger)
	if err := bot.Match(ctx, *numGames, *parallel); err != nil {
		log.Fatal().Err(err).Msg("match")
	}
	ev := log.Info().
		Str("bot", conf.Name).
		Float32("wins", bot.Wins).
		Float32("losses", bot.Loss).
		Float32("draws", bot.Draw).
		Float32("score", bot.ScoreRate())
	if elo := bot.EloDiff(); !math32.IsInf(elo, 0) {
		ev = ev.Float32("elo_diff", elo)
	}
	ev.Msg("match over")

	if *pgnPath != "" {
		if err := bot.SavePGN(*pgnPath); err != nil {
			log.Fatal().Err(err).Msg("save pgn")
		}
	}
}
