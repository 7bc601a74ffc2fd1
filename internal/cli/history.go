package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "List journalled sessions, or the events of one",
	Long: `Without arguments, list recent sessions newest first.
With a session id (or a unique prefix of one), print every move and reset
recorded in it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

var (
	historyLimit  int
	historyDelete bool
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of sessions to list (0 for all)")
	historyCmd.Flags().BoolVar(&historyDelete, "delete", false, "Delete the given session")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	w := cmd.OutOrStdout()
	if len(args) == 0 {
		if historyDelete {
			return fmt.Errorf("--delete needs a session id")
		}
		return printSessions(w, db, historyLimit)
	}

	s, err := db.GetSession(args[0])
	if err != nil {
		return err
	}
	if historyDelete {
		if err := db.DeleteSession(s.ID); err != nil {
			return err
		}
		fmt.Fprintf(w, "Deleted session %s\n", s.ID)
		return nil
	}
	return printSession(w, db, s)
}

func printSessions(w io.Writer, db *storage.DB, limit int) error {
	sessions, err := db.ListSessions(limit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-8s  %-19s  %-6s  %5s  %s\n", "ID", "STARTED", "SOURCE", "MOVES", "DURATION")
	for _, s := range sessions {
		dur := "open"
		if s.EndedAt != nil {
			dur = s.Duration().Round(time.Second).String()
		}
		fmt.Fprintf(w, "%-8s  %-19s  %-6s  %5d  %s\n",
			s.ID[:8], s.StartedAt.Format("2006-01-02 15:04:05"), s.Source, s.MoveCount, dur)
	}
	return nil
}

func printSession(w io.Writer, db *storage.DB, s *storage.Session) error {
	events, err := db.Events(s.ID)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Session: %s\n", s.ID)
	fmt.Fprintf(w, "Source:  %s\n", s.Source)
	fmt.Fprintf(w, "Started: %s\n", s.StartedAt.Format(time.RFC3339))
	if s.EndedAt != nil {
		fmt.Fprintf(w, "Ended:   %s (%s)\n", s.EndedAt.Format(time.RFC3339), s.Duration().Round(time.Millisecond))
	}
	fmt.Fprintf(w, "Moves:   %d\n\n", s.MoveCount)

	for _, e := range events {
		what := e.Notation
		if e.Kind == storage.EventReset {
			what = "(reset)"
		}
		fmt.Fprintf(w, "%4d  %9.3fs  %-8s  %s\n", e.Seq, e.At.Seconds(), what, e.Origin)
	}
	if tail := storage.MoveString(events); tail != "" {
		fmt.Fprintf(w, "\nSince last reset: %s\n", tail)
	}
	return nil
}
