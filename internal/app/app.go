// Package app owns the per-session state of the viewer: the cube, its
// spatial model, the view flags, and the single path through which input
// commands mutate them.
package app

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"

	"github.com/SeamusWaldron/cubeview/internal/config"
	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/render"
	"github.com/SeamusWaldron/cubeview/internal/spatial"
)

// Journal records state changes. storage.Session implements it.
type Journal interface {
	RecordMove(m cube.Move, origin string) error
	RecordReset(origin string) error
}

// App is the application context handed to the update and render steps.
// The frame loop owns it; nothing here is safe for concurrent use.
type App struct {
	Cube     *cube.Cube
	Model    *spatial.Model
	Renderer *render.Renderer

	Mode       render.Mode
	Edges      bool
	AutoRotate bool
	Paused     bool
	Debug      bool

	sceneW, sceneH float32
	dragScale      float32
	autoDelta      config.Delta
	journal        Journal
	log            zerolog.Logger
	moves          int
}

// Option configures an App.
type Option func(*App)

// WithJournal records every move and reset.
func WithJournal(j Journal) Option {
	return func(a *App) {
		a.journal = j
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) {
		a.log = l
	}
}

// New builds the context from settings: a solved cube placed on the
// projection center of a cfg.Width x cfg.Height scene.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, err := render.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	w, h := float32(cfg.Width), float32(cfg.Height)
	pivot := ms3.Vec{X: w / 2, Y: h / 2, Z: cfg.FocalDistance}
	a := &App{
		Cube: cube.New(),
		Model: spatial.New(
			spatial.WithPivot(pivot),
			spatial.WithFocal(cfg.FocalDistance),
			spatial.WithLength(cfg.CubeLength),
		),
		Renderer: render.New(
			render.WithNetSquare(cfg.NetSquare),
			render.WithNetCenter(ms2.Vec{X: pivot.X, Y: pivot.Y}),
		),
		Mode:       mode,
		Edges:      cfg.Edges,
		AutoRotate: cfg.AutoRotate,
		sceneW:     w,
		sceneH:     h,
		dragScale:  cfg.DragScale,
		autoDelta:  cfg.AutoRotateDelta,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// SceneSize returns the scene dimensions in pixels.
func (a *App) SceneSize() (w, h float32) {
	return a.sceneW, a.sceneH
}

// Moves returns how many moves have been applied this session.
func (a *App) Moves() int { return a.moves }

// Handle applies one command. It reports quit=true for QuitCmd. An invalid
// move returns an error wrapping cube.ErrInvalidMove and changes nothing.
func (a *App) Handle(cmd Command) (quit bool, err error) {
	switch c := cmd.(type) {
	case MoveCmd:
		if err := a.Cube.ApplyMove(c.Move); err != nil {
			return false, err
		}
		a.moves++
		a.log.Debug().Str("move", c.Move.Notation()).Str("origin", string(c.Origin)).Msg("move applied")
		a.record(func(j Journal) error { return j.RecordMove(c.Move, string(c.Origin)) })

	case ResetCmd:
		a.Cube.Reset()
		a.log.Debug().Str("origin", string(c.Origin)).Msg("cube reset")
		a.record(func(j Journal) error { return j.RecordReset(string(c.Origin)) })

	case ResetViewCmd:
		a.Model.Reset()

	case DragCmd:
		if a.Debug {
			a.log.Info().Float32("dx", c.DX).Float32("dy", c.DY).Msg("pointer moved")
		}
		if a.Paused {
			return false, nil
		}
		a.Model.Rotate(spatial.AxisX, c.DY/a.dragScale)
		a.Model.Rotate(spatial.AxisY, -c.DX/a.dragScale)

	case RotateCmd:
		if !a.Paused {
			a.Model.Rotate(c.Axis, c.Angle)
		}

	case TickCmd:
		if a.AutoRotate && !a.Paused {
			a.Model.Rotate(spatial.AxisX, a.autoDelta.X)
			a.Model.Rotate(spatial.AxisY, a.autoDelta.Y)
			a.Model.Rotate(spatial.AxisZ, a.autoDelta.Z)
		}

	case ToggleCmd:
		a.toggle(c.Toggle)

	case SetModeCmd:
		a.Mode = c.Mode

	case QuitCmd:
		return true, nil

	default:
		return false, fmt.Errorf("app: unknown command %T", cmd)
	}
	return false, nil
}

func (a *App) toggle(t Toggle) {
	switch t {
	case ToggleMode:
		if a.Mode == render.ModeNet {
			a.Mode = render.ModeSolid
		} else {
			a.Mode = render.ModeNet
		}
	case ToggleEdges:
		a.Edges = !a.Edges
	case ToggleAutoRotate:
		a.AutoRotate = !a.AutoRotate
	case TogglePause:
		a.Paused = !a.Paused
	case ToggleDebug:
		a.Debug = !a.Debug
	}
	a.log.Debug().Stringer("toggle", t).Msg("view flag toggled")
}

func (a *App) record(fn func(Journal) error) {
	if a.journal == nil {
		return
	}
	if err := fn(a.journal); err != nil {
		a.log.Warn().Err(err).Msg("journal write failed")
	}
}

// Render draws one frame onto s. The background is left to the caller.
// A degenerate projection skips the frame: nothing is drawn, the error is
// logged and returned.
func (a *App) Render(s render.Surface) error {
	err := a.Renderer.Draw(s, a.Cube, a.Model, a.Mode, a.Edges)
	if errors.Is(err, spatial.ErrDegenerateProjection) {
		a.log.Warn().Err(err).Msg("frame skipped")
	}
	return err
}
