package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/hearwise/internal/app"
	"github.com/abhisek/hearwise/internal/config"
	"github.com/abhisek/hearwise/internal/explain"
	"github.com/abhisek/hearwise/internal/identity"
	"github.com/abhisek/hearwise/internal/llm"
	"github.com/abhisek/hearwise/internal/screens/env"
	"github.com/abhisek/hearwise/internal/session"
	"github.com/abhisek/hearwise/internal/stimulus"
	"github.com/abhisek/hearwise/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, false)
	defer logger.Sync()

	st, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	e, err := buildEnv(cmd, cfg, st, logger)
	if err != nil {
		return err
	}
	if !e.Explainer.Enabled() {
		fmt.Fprintln(os.Stderr, "LLM provider not configured: result explanations will be unavailable.")
	}
	return app.Run(e)
}

// buildEnv wires the audio device, repositories, user and optional
// explanation service shared by the TUI and the headless commands.
func buildEnv(cmd *cobra.Command, cfg config.Config, st *store.Store, logger *zap.Logger) (*env.Env, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	flagUser, _ := cmd.Flags().GetString("user")
	userID, err := identity.Resolve(flagUser, cfg.UserID).CurrentUser(ctx)
	if err != nil {
		// The TUI asks for a name; headless callers check UserID.
		logger.Info("no user identity resolved", zap.Error(err))
		userID = ""
	}

	startLevel := cfg.StartLevel()
	e := &env.Env{
		UserID:  userID,
		Records: st.RecordRepo(),
		Events:  st.EventRepo(),
		Device: &stimulus.PlayerDevice{
			Player:  cfg.Player,
			KeepDir: cfg.KeepDir,
			Synth:   stimulus.NewSynth(cfg.SampleRate, cfg.Ramp),
			Logger:  logger,
		},
		Session: session.Config{
			StartLevel:   &startLevel,
			Pacing:       cfg.Pacing,
			ToneDuration: cfg.ToneDuration,
		},
		Logger: logger,
	}

	if llmCfg, ok := llm.Resolve(); ok {
		provider, err := llm.NewProvider(ctx, llmCfg, st.EventRepo(), logger)
		if err != nil {
			logger.Warn("llm provider unavailable", zap.String("provider", llmCfg.Provider), zap.Error(err))
		} else {
			e.Explainer = explain.NewService(provider, explain.DefaultConfig())
		}
	}
	return e, nil
}
