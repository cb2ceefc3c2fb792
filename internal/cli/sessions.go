package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubeless/internal/analysis"
	"github.com/SeamusWaldron/cubeless/internal/storage"
)

var (
	sessionsLimit int
	exportFormat  string
	exportOutput  string
	statsLast     int
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Browse archived sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session_id>",
	Short: "Show a session with its moves",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsShow,
}

var sessionsExportCmd = &cobra.Command{
	Use:   "export <session_id>",
	Short: "Export a session as JSON or YAML",
	Long: `Export a session with its moves.

Examples:
  cubeless sessions export <session_id>
  cubeless sessions export <session_id> --format yaml -o session.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runSessionsExport,
}

var sessionsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize archived sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionsStats,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session_id>",
	Short: "Delete a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsDelete,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)

	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsListCmd.Flags().IntVarP(&sessionsLimit, "limit", "n", 20, "Maximum number of sessions")

	sessionsCmd.AddCommand(sessionsShowCmd)

	sessionsCmd.AddCommand(sessionsExportCmd)
	sessionsExportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format (json, yaml)")
	sessionsExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")

	sessionsCmd.AddCommand(sessionsStatsCmd)
	sessionsStatsCmd.Flags().IntVarP(&statsLast, "last", "n", 0, "Only the most recent sessions (default: all)")

	sessionsCmd.AddCommand(sessionsDeleteCmd)
}

// withSessions opens the database for the duration of fn.
func withSessions(fn func(*storage.SessionRepository) error) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(storage.NewSessionRepository(db))
}

func getSession(repo *storage.SessionRepository, id string) (*storage.SessionRecord, error) {
	rec, err := repo.Get(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("session not found: %s", id)
	}
	return rec, nil
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	return withSessions(func(repo *storage.SessionRepository) error {
		sessions, err := repo.List(sessionsLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No sessions recorded")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTARTED\tDURATION\tMOVES\tSOLVED")
		for _, s := range sessions {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%t\n",
				s.SessionID,
				s.StartedAt.Local().Format("2006-01-02 15:04"),
				s.EndedAt.Sub(s.StartedAt).Round(time.Second),
				s.MoveCount,
				s.Solved,
			)
		}
		return w.Flush()
	})
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	return withSessions(func(repo *storage.SessionRepository) error {
		rec, err := getSession(repo, args[0])
		if err != nil {
			return err
		}
		printSession(cmd.OutOrStdout(), rec)
		return nil
	})
}

func printSession(w io.Writer, rec *storage.SessionRecord) {
	fmt.Fprintf(w, "Session:  %s\n", rec.SessionID)
	fmt.Fprintf(w, "Started:  %s\n", rec.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration: %s\n", rec.EndedAt.Sub(rec.StartedAt).Round(time.Second))
	if rec.Scramble != "" {
		fmt.Fprintf(w, "Scramble: %s\n", rec.Scramble)
	}
	fmt.Fprintf(w, "Start:    %s\n", rec.StartFacelets)
	fmt.Fprintf(w, "End:      %s\n", rec.EndFacelets)
	fmt.Fprintf(w, "Solved:   %t\n", rec.Solved)
	fmt.Fprintf(w, "Moves:    %s\n", strings.Join(rec.Moves, " "))
	fmt.Fprintf(w, "Solution: %s (%d moves)\n", strings.Join(rec.Solution, " "), rec.MoveCount)
}

func encodeSession(w io.Writer, rec *storage.SessionRecord, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format: %s (use json or yaml)", format)
	}
}

func runSessionsExport(cmd *cobra.Command, args []string) error {
	return withSessions(func(repo *storage.SessionRepository) error {
		rec, err := getSession(repo, args[0])
		if err != nil {
			return err
		}

		if exportOutput == "" {
			return encodeSession(cmd.OutOrStdout(), rec, exportFormat)
		}

		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()

		if err := encodeSession(f, rec, exportFormat); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported session to %s\n", exportOutput)
		return nil
	})
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	return withSessions(func(repo *storage.SessionRepository) error {
		removed, err := repo.Delete(args[0])
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("session not found: %s", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", args[0])
		return nil
	})
}

func runSessionsStats(cmd *cobra.Command, args []string) error {
	return withSessions(func(repo *storage.SessionRepository) error {
		limit := statsLast
		if limit <= 0 {
			count, err := repo.Count()
			if err != nil {
				return err
			}
			limit = count
		}

		sessions, err := repo.List(limit)
		if err != nil {
			return err
		}
		// List leaves out moves; efficiency needs the raw history.
		for i := range sessions {
			full, err := repo.Get(sessions[i].SessionID)
			if err != nil {
				return err
			}
			if full != nil {
				sessions[i] = *full
			}
		}

		printTrends(cmd.OutOrStdout(), analysis.AnalyzeTrends(sessions))
		return nil
	})
}

func printTrends(w io.Writer, r *analysis.TrendReport) {
	fmt.Fprintf(w, "Sessions:    %d (%d solved, %.0f%%)\n", r.TotalSessions, r.SolvedSessions, r.SolveRate)
	if r.TotalSessions == 0 {
		return
	}
	fmt.Fprintf(w, "Period:      %s to %s\n", r.DateRange.Start, r.DateRange.End)
	fmt.Fprintf(w, "Efficiency:  %.1f%% of pressed moves kept\n", r.EfficiencyPct)
	if r.BestSession == nil {
		return
	}
	fmt.Fprintf(w, "Avg moves:   %.1f\n", r.AvgMoves)
	fmt.Fprintf(w, "Avg time:    %s\n", time.Duration(r.AvgDurationMs*float64(time.Millisecond)).Round(time.Second))
	fmt.Fprintf(w, "Avg TPS:     %.2f\n", r.AvgTPS)
	fmt.Fprintf(w, "Best:        %d moves (%s)\n", r.BestSession.MoveCount, r.BestSession.SessionID)
	fmt.Fprintf(w, "Worst:       %d moves (%s)\n", r.WorstSession.MoveCount, r.WorstSession.SessionID)
	if r.ImprovementPct != 0 {
		fmt.Fprintf(w, "Improvement: %.1f%%\n", r.ImprovementPct)
	}
	for _, n := range []int{5, 12, 50} {
		if avg, ok := r.RollingAvgs[n]; ok {
			fmt.Fprintf(w, "Last %d avg: %.1f moves\n", n, avg)
		}
	}
}
