package main

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solo/internal/config"
	"github.com/robalobadob/wordle/apps/solo/internal/db"
	"github.com/robalobadob/wordle/apps/solo/internal/stats"
	"github.com/robalobadob/wordle/apps/solo/internal/words"
)

// app holds the collaborators every host needs.
type app struct {
	words   *words.List
	tracker *stats.Tracker
	conn    *sql.DB
}

func openApp(cfg config.Config) (*app, error) {
	list, err := words.Load(cfg.Words.Answers, cfg.Words.Allowed)
	if err != nil {
		return nil, fmt.Errorf("load word lists: %w", err)
	}
	a, g := list.Stats()
	log.Debug().Int("answers", a).Int("allowed", g).Msg("word lists loaded")

	out := &app{words: list}
	var st stats.Store
	switch cfg.Stats.Backend {
	case config.BackendSQLite:
		conn, err := db.Open(cfg.Stats.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open db: %w", err)
		}
		out.conn = conn
		st = stats.NewSQLiteStore(conn)
	default:
		st = stats.NewFileStore(cfg.Stats.File)
	}

	out.tracker, err = stats.NewTracker(st)
	if err != nil {
		out.Close()
		return nil, fmt.Errorf("load statistics: %w", err)
	}
	return out, nil
}

func (a *app) Close() {
	if a.conn != nil {
		_ = a.conn.Close()
	}
}
