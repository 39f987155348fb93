package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hearwise/internal/identity"
	"github.com/abhisek/hearwise/internal/report"
	"github.com/abhisek/hearwise/internal/session"
	"github.com/abhisek/hearwise/internal/staircase"
	"github.com/abhisek/hearwise/internal/stimulus"
)

// errInputEnded is returned when stdin closes mid-test.
var errInputEnded = errors.New("input ended before the test finished")

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run a screening without the TUI, answering on stdin",
	Long: "Runs a screening in line mode. After each tone, answer y (heard),\n" +
		"n (not heard), r (replay) or q (quit without saving).",
	RunE: func(cmd *cobra.Command, args []string) error {
		formatFlag, _ := cmd.Flags().GetString("format")
		format, err := report.ParseFormat(formatFlag)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cfg, true)
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
		if e.UserID == "" {
			return fmt.Errorf("%w: pass --user or set HEARWISE_USER", identity.ErrNoUser)
		}
		return runHeadless(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), e.NewSession(), format)
	},
}

func init() {
	testCmd.Flags().StringP("format", "f", "text", "Report format printed at the end (text, csv)")
}

// runHeadless drives s from line input until the run finishes, the user
// quits, or in closes.
func runHeadless(ctx context.Context, in io.Reader, out io.Writer, s *session.Session, format report.Format) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	if _, err := s.Start(ctx); err != nil {
		if s.State() != staircase.Testing {
			return fmt.Errorf("start test: %w", err)
		}
		printAudioErr(out, err)
	}

	scanner := bufio.NewScanner(in)
	prompt(out, s)
	for scanner.Scan() {
		var (
			res session.Outcome
			err error
		)
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			res, err = s.Respond(ctx, true)
		case "n", "no":
			res, err = s.Respond(ctx, false)
		case "r":
			err = s.Replay(ctx)
		case "q":
			if err := s.Cancel(ctx); err != nil {
				return fmt.Errorf("cancel test: %w", err)
			}
			fmt.Fprintln(out, "Test cancelled. Nothing was saved.")
			return nil
		default:
			fmt.Fprintln(out, "Please answer y, n, r or q.")
			prompt(out, s)
			continue
		}

		if res.Finished() {
			fmt.Fprintln(out)
			if res.PersistErr != nil {
				fmt.Fprintln(out, "Warning: the result could not be saved:", res.PersistErr)
			}
			return report.Render(out, format, *res.Step.Record, *res.Summary)
		}
		if err != nil {
			printAudioErr(out, err)
		}
		prompt(out, s)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := s.Cancel(ctx); err != nil {
		return fmt.Errorf("cancel test: %w", err)
	}
	return errInputEnded
}

func prompt(out io.Writer, s *session.Session) {
	cur, ok := s.Cursor()
	if !ok {
		return
	}
	done, total := s.Progress()
	fmt.Fprintf(out, "[%d/%d] %s ear, %s. Heard it? [y/n/r/q]: ", done+1, total, cur.Ear, cur.Frequency())
}

func printAudioErr(out io.Writer, err error) {
	if errors.Is(err, stimulus.ErrAudio) {
		fmt.Fprintln(out, "\nThe tone could not be played:", err)
		fmt.Fprintln(out, "Check your headphones, then answer r to replay.")
		return
	}
	fmt.Fprintln(out, "\nError:", err)
}
