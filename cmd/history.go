package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hearwise/internal/audiometry"
	"github.com/abhisek/hearwise/internal/identity"
	"github.com/abhisek/hearwise/internal/report"
	"github.com/abhisek/hearwise/internal/scoring"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past screenings for the current user",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		flagUser, _ := cmd.Flags().GetString("user")
		userID, err := identity.Resolve(flagUser, cfg.UserID).CurrentUser(context.Background())
		if err != nil {
			return fmt.Errorf("resolve user: %w", err)
		}

		s, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		records, err := s.RecordRepo().LoadHistory(context.Background(), userID, limit)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(records) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No screenings recorded for %s.\n", userID)
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-36s  %-16s  %-14s  %-14s\n", "ID", "Taken", "Right", "Left")
		fmt.Fprintln(out, strings.Repeat("─", 86))
		for _, rec := range records {
			fmt.Fprintln(out, historyLine(rec))
		}
		return nil
	},
}

func historyLine(rec audiometry.Record) string {
	sum := scoring.Score(rec)
	return fmt.Sprintf("%-36s  %-16s  %-14s  %-14s",
		rec.ID(),
		rec.TakenAt().Local().Format("2006-01-02 15:04"),
		sum.Right.Band,
		sum.Left.Band)
}

var reportCmd = &cobra.Command{
	Use:   "report <record-id>",
	Short: "Print a saved screening as text or CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatFlag, _ := cmd.Flags().GetString("format")
		format, err := report.ParseFormat(formatFlag)
		if err != nil {
			return err
		}

		s, err := openConfiguredStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := s.RecordRepo().Get(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("get record %s: %w", args[0], err)
		}
		return report.Render(cmd.OutOrStdout(), format, rec, scoring.Score(rec))
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of records to show (0 for all)")
	reportCmd.Flags().StringP("format", "f", "text", "Output format (text, csv)")
}
