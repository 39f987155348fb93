package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/hearwise/internal/explain"
	"github.com/abhisek/hearwise/internal/llm"
	"github.com/abhisek/hearwise/internal/scoring"
)

var explainCmd = &cobra.Command{
	Use:   "explain <record-id>",
	Short: "Ask the configured LLM to explain a saved screening in plain language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cfg, true)
		defer logger.Sync()

		llmCfg, ok := llm.Resolve()
		if !ok {
			return fmt.Errorf("%w: set %s or an API key such as ANTHROPIC_API_KEY", explain.ErrDisabled, llm.EnvProvider)
		}

		s, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		rec, err := s.RecordRepo().Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get record %s: %w", args[0], err)
		}

		provider, err := llm.NewProvider(ctx, llmCfg, s.EventRepo(), logger)
		if err != nil {
			return fmt.Errorf("create llm provider: %w", err)
		}
		exp, err := explain.NewService(provider, explain.DefaultConfig()).Explain(ctx, rec, scoring.Score(rec))
		if err != nil {
			var (
				unavailable *llm.ErrProviderUnavailable
				auth        *llm.ErrAuth
			)
			switch {
			case errors.As(err, &auth):
				return fmt.Errorf("the LLM provider rejected the API key, check your configuration: %w", err)
			case errors.As(err, &unavailable):
				return fmt.Errorf("the LLM provider is unavailable, try again later: %w", err)
			}
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), exp.Text())
		return nil
	},
}
