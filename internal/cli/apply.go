package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview/internal/app"
	"github.com/SeamusWaldron/cubeview/internal/cube"
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply a move sequence to a solved cube and print the net",
	Long: `Apply a move sequence to a solved cube and print the resulting facelet net.

Moves are L R U D F B, with ' (or i) for counter-clockwise:
  cubeview apply "R U R' U'"

The whole sequence is checked before any move is applied.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

var (
	applyInverse   bool
	applyNoJournal bool
)

func init() {
	applyCmd.Flags().BoolVar(&applyInverse, "inverse", false, "Also print the sequence that undoes the moves")
	applyCmd.Flags().BoolVar(&applyNoJournal, "no-journal", false, "Do not record the session")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := cube.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	var opts []app.Option
	if cfg.Journal && !applyNoJournal {
		sess, closeJournal := startJournal("apply")
		if sess != nil {
			defer closeJournal()
			opts = append(opts, app.WithJournal(sess))
		}
	}
	a, err := app.New(cfg, opts...)
	if err != nil {
		return err
	}
	return applyAndPrint(cmd.OutOrStdout(), a, moves, applyInverse)
}

func applyAndPrint(w io.Writer, a *app.App, moves []cube.Move, inverse bool) error {
	for _, m := range moves {
		if _, err := a.Handle(app.MoveCmd{Move: m, Origin: app.OriginCLI}); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "Moves:  %s (%d)\n", cube.FormatMoves(moves), len(moves))
	if inverse {
		fmt.Fprintf(w, "Undo:   %s\n", cube.FormatMoves(cube.Invert(moves)))
	}
	solved := "no"
	if a.Cube.IsSolved() {
		solved = "yes"
	}
	fmt.Fprintf(w, "Solved: %s\n\n", solved)
	fmt.Fprint(w, a.Cube.String())
	return nil
}
