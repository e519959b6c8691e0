package main

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-engine/internal/config"
	"github.com/robalobadob/wordle/apps/go-engine/internal/daily"
	"github.com/robalobadob/wordle/apps/go-engine/internal/handle"
	"github.com/robalobadob/wordle/apps/go-engine/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-engine/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	list, err := cfg.LoadWords()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	picker, err := cfg.NewPicker(list)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build word picker")
	}
	dailyPicker, err := daily.NewPicker(list, cfg.DailySalt)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build daily picker")
	}
	handles, err := handle.NewIssuer(cfg.HandleSecret, cfg.HandleTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up handle tokens")
	}

	games := store.NewMemoryStore()
	go sweepExpired(games, cfg.HandleTTL)

	srv := httpserver.New(httpserver.Deps{
		Store:        games,
		Picker:       picker,
		Daily:        dailyPicker,
		Handles:      handles,
		AttemptLimit: cfg.AttemptLimit,
	})
	log.Info().
		Str("addr", cfg.Addr).
		Str("picker", cfg.Picker).
		Int("words", len(list)).
		Msg("starting wordle-engine")
	if err := srv.Start(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// sweepExpired drops games whose handle tokens can no longer be valid.
func sweepExpired(games store.Store, ttl time.Duration) {
	every := min(ttl, time.Hour)
	t := time.NewTicker(every)
	defer t.Stop()
	for now := range t.C {
		if n := games.Sweep(now.Add(-ttl)); n > 0 {
			log.Info().Int("swept", n).Int("live", games.Len()).Msg("expired games dropped")
		}
	}
}
