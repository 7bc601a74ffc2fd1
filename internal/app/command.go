package app

import (
	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/render"
	"github.com/SeamusWaldron/cubeview/internal/spatial"
)

// Origin tags where a state change came from, for the journal.
type Origin string

const (
	OriginKeyboard Origin = "keyboard"
	OriginBLE      Origin = "ble"
	OriginCLI      Origin = "cli"
)

// Toggle names a boolean view flag.
type Toggle int

const (
	ToggleMode Toggle = iota
	ToggleEdges
	ToggleAutoRotate
	TogglePause
	ToggleDebug
)

func (t Toggle) String() string {
	switch t {
	case ToggleMode:
		return "mode"
	case ToggleEdges:
		return "edges"
	case ToggleAutoRotate:
		return "auto_rotate"
	case TogglePause:
		return "pause"
	case ToggleDebug:
		return "debug"
	default:
		return "?"
	}
}

// Command is one discrete input delivered to App.Handle.
type Command interface {
	command()
}

// MoveCmd turns a face.
type MoveCmd struct {
	Move   cube.Move
	Origin Origin
}

// DragCmd is a pointer drag delta in scene pixels.
type DragCmd struct {
	DX, DY float32
}

// RotateCmd turns the view by a fixed angle about one axis.
type RotateCmd struct {
	Axis  spatial.Axis
	Angle float32
}

// TickCmd advances one frame.
type TickCmd struct{}

// ToggleCmd flips a view flag.
type ToggleCmd struct {
	Toggle Toggle
}

// SetModeCmd selects net or solid drawing.
type SetModeCmd struct {
	Mode render.Mode
}

// ResetCmd restores the solved coloring.
type ResetCmd struct {
	Origin Origin
}

// ResetViewCmd puts the solid back at its starting orientation.
type ResetViewCmd struct{}

// QuitCmd ends the session.
type QuitCmd struct{}

func (MoveCmd) command()      {}
func (DragCmd) command()      {}
func (RotateCmd) command()    {}
func (TickCmd) command()      {}
func (ToggleCmd) command()    {}
func (SetModeCmd) command()   {}
func (ResetCmd) command()     {}
func (ResetViewCmd) command() {}
func (QuitCmd) command()      {}
