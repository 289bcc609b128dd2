package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solo/internal/config"
	"github.com/robalobadob/wordle/apps/solo/internal/game"
	"github.com/robalobadob/wordle/apps/solo/internal/httpserver"
	"github.com/robalobadob/wordle/apps/solo/internal/store"
	"github.com/robalobadob/wordle/apps/solo/internal/tui"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		cfg     config.Config
	)

	root := &cobra.Command{
		Use:           "wordle",
		Short:         "Guess the five-letter word in six tries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if cfgPath == "" {
				cfgPath = os.Getenv("WORDLE_CONFIG")
			}
			c, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			cfg = c
			if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML config file")

	root.AddCommand(newServeCmd(&cfg))
	root.AddCommand(newPlayCmd(&cfg))
	root.AddCommand(newStatsCmd(&cfg))
	return root
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	var fixed bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve games over HTTP",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := openApp(*cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			srv := httpserver.New(store.NewMemoryStore(), a.words, a.tracker, httpserver.Options{
				Secret:           []byte(cfg.HTTP.JWTSecret),
				TokenTTL:         cfg.TokenTTL(),
				ClientOrigin:     cfg.HTTP.ClientOrigin,
				Secure:           os.Getenv("NODE_ENV") == "production",
				AllowFixedAnswer: fixed,
			})
			log.Info().Str("port", cfg.Port).Str("stats", cfg.Stats.Backend).Msg("starting wordle server")
			return srv.Start(":" + cfg.Port)
		},
	}
	cmd.Flags().BoolVar(&fixed, "allow-fixed-answer", false, "honour the answer field of POST /game/new")
	return cmd
}

func newPlayCmd(cfg *config.Config) *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			// The alternate screen owns stdout; logs go to a file or nowhere.
			var out io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				out = f
			}
			log.Logger = zerolog.New(out).With().Timestamp().Logger()

			a, err := openApp(*cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			s, err := game.New(a.words, a.tracker)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return tui.Run(ctx, s)
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	return cmd
}

func newStatsCmd(cfg *config.Config) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the statistics record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(*cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			sv := game.StatsSummary(a.tracker)
			w := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(w).Encode(sv)
			}
			_, _ = fmt.Fprintf(w, "played %d  win %% %.0f  lost %d\n", sv.GamesPlayed, sv.WinRate, sv.Losses)
			for n := 1; n <= 6; n++ {
				mark := ""
				if sv.Last == n {
					mark = " <"
				}
				_, _ = fmt.Fprintf(w, "%d: %d%s\n", n, sv.Wins[n-1], mark)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
