package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview/internal/app"
	"github.com/SeamusWaldron/cubeview/internal/ble"
	"github.com/SeamusWaldron/cubeview/internal/config"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive viewer",
	Long: `Open the full-screen terminal viewer.

Keyboard shortcuts:
  l r u d f b   - Turn a face clockwise
  L R U D F B   - Turn a face counter-clockwise
  p             - Reset to solved
  0             - Reset the view
  2 / 3 / Tab   - Net / solid / toggle
  a             - Toggle auto-rotate
  e             - Toggle facelet outlines
  space         - Pause view changes
  m             - Log pointer deltas
  arrows, z/Z   - Nudge the view
  q/Esc         - Quit

Drag with the left mouse button to rotate the solid.`,
	RunE: runView,
}

var (
	viewMode      string
	viewEdges     bool
	viewAuto      bool
	viewBLE       bool
	viewFPS       int
	viewNoJournal bool
)

func init() {
	viewCmd.Flags().StringVar(&viewMode, "mode", "net", "Initial mode: net or solid")
	viewCmd.Flags().BoolVar(&viewEdges, "edges", true, "Outline facelets")
	viewCmd.Flags().BoolVar(&viewAuto, "auto", false, "Start with auto-rotate on")
	viewCmd.Flags().BoolVar(&viewBLE, "ble", false, "Take moves from a GoCube over Bluetooth")
	viewCmd.Flags().IntVar(&viewFPS, "fps", 60, "Frame rate cap")
	viewCmd.Flags().BoolVar(&viewNoJournal, "no-journal", false, "Do not record the session")
	rootCmd.AddCommand(viewCmd)
}

// applyViewFlags copies explicitly set flags over the loaded config.
func applyViewFlags(cmd *cobra.Command, c *config.Config) {
	f := cmd.Flags()
	if f.Changed("mode") {
		c.Mode = viewMode
	}
	if f.Changed("edges") {
		c.Edges = viewEdges
	}
	if f.Changed("auto") {
		c.AutoRotate = viewAuto
	}
	if f.Changed("fps") {
		c.FPS = viewFPS
	}
	if viewNoJournal {
		c.Journal = false
	}
}

func runView(cmd *cobra.Command, args []string) error {
	applyViewFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	var progOpts []app.ProgramOption
	if viewBLE {
		fmt.Println("Scanning for GoCube devices...")
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		src, err := ble.Open(ctx, 5*time.Second, log.Logger)
		cancel()
		if err != nil {
			return fmt.Errorf("smart cube: %w", err)
		}
		defer src.Close()
		fmt.Printf("Connected: %s\n", src.Name())
		progOpts = append(progOpts, app.WithRemoteMoves(src.Moves()))
	}

	restore, err := redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	appOpts := []app.Option{app.WithLogger(log.Logger)}
	if cfg.Journal {
		sess, closeJournal := startJournal("view")
		if sess != nil {
			defer closeJournal()
			appOpts = append(appOpts, app.WithJournal(sess))
		}
	}

	a, err := app.New(cfg, appOpts...)
	if err != nil {
		return err
	}
	if err := app.NewProgram(a, cfg.FPS, cfg.Stroke, progOpts...).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	log.Info().Int("moves", a.Moves()).Bool("solved", a.Cube.IsSolved()).Msg("session ended")
	return nil
}
