package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"

	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/render"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	flagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// Messages
type tickMsg time.Time
type remoteMoveMsg struct{ move cube.Move }
type remoteClosedMsg struct{}

// Program is the bubbletea model hosting an App in a terminal.
type Program struct {
	app    *App
	fps    int
	stroke float32
	remote <-chan cube.Move

	canvas   *render.Canvas
	viewport *render.Viewport
	term     *render.Terminal

	dragging   bool
	lastX      int
	lastY      int
	cols, rows int
	cmdErr     error // last rejected command, cleared by the next accepted one
	frameErr   error // last failed frame, cleared by the next drawn one
}

// ProgramOption configures a Program.
type ProgramOption func(*Program)

// WithRemoteMoves feeds moves from an external source, such as a
// connected smart cube, into the session.
func WithRemoteMoves(ch <-chan cube.Move) ProgramOption {
	return func(p *Program) {
		p.remote = ch
	}
}

// NewProgram wraps a for display at fps frames per second. stroke is the
// outline width in scene pixels.
func NewProgram(a *App, fps int, stroke float32, opts ...ProgramOption) *Program {
	if fps <= 0 {
		fps = 30
	}
	p := &Program{
		app:    a,
		fps:    fps,
		stroke: stroke,
		term:   render.NewTerminal(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run starts the terminal program and blocks until the user quits.
func (p *Program) Run() error {
	prog := tea.NewProgram(p, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := prog.Run()
	return err
}

func (p *Program) Init() tea.Cmd {
	return tea.Batch(p.tickCmd(), p.listenRemote())
}

func (p *Program) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(p.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (p *Program) listenRemote() tea.Cmd {
	if p.remote == nil {
		return nil
	}
	return func() tea.Msg {
		m, ok := <-p.remote
		if !ok {
			return remoteClosedMsg{}
		}
		return remoteMoveMsg{move: m}
	}
}

func (p *Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, ok := KeyCommand(msg.String())
		if !ok {
			return p, nil
		}
		return p, p.handle(cmd)

	case tea.MouseMsg:
		return p, p.mouse(msg)

	case tea.WindowSizeMsg:
		p.resize(msg.Width, msg.Height)

	case tickMsg:
		if q := p.handle(TickCmd{}); q != nil {
			return p, q
		}
		return p, p.tickCmd()

	case remoteMoveMsg:
		if q := p.handle(MoveCmd{Move: msg.move, Origin: OriginBLE}); q != nil {
			return p, q
		}
		return p, p.listenRemote()

	case remoteClosedMsg:
		p.remote = nil
	}
	return p, nil
}

// handle forwards to the App and returns tea.Quit when the session ends.
func (p *Program) handle(cmd Command) tea.Cmd {
	quit, err := p.app.Handle(cmd)
	p.cmdErr = err
	if quit {
		return tea.Quit
	}
	return nil
}

func (p *Program) mouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			p.dragging = true
			p.lastX, p.lastY = msg.X, msg.Y
		}
	case tea.MouseActionRelease:
		p.dragging = false
	case tea.MouseActionMotion:
		if !p.dragging || p.viewport == nil {
			return nil
		}
		// One cell is one pixel wide and two pixels tall.
		d := ms2.Vec{X: float32(msg.X - p.lastX), Y: float32(2 * (msg.Y - p.lastY))}
		p.lastX, p.lastY = msg.X, msg.Y
		d = p.viewport.ToScene(d)
		return p.handle(DragCmd{DX: d.X, DY: d.Y})
	}
	return nil
}

func (p *Program) resize(cols, rows int) {
	p.cols, p.rows = cols, rows
	w, h := cols, (rows-1)*2
	if w <= 0 || h <= 0 {
		p.canvas, p.viewport = nil, nil
		return
	}
	sw, sh := p.app.SceneSize()
	fit := render.Fit(nil, sw, sh, float32(w), float32(h))
	p.canvas = render.NewCanvas(w, h, math32.Max(1, p.stroke*fit.Scale))
	fit.Target = p.canvas
	p.viewport = fit
}

func (p *Program) View() string {
	if p.canvas == nil {
		return "resizing...\n"
	}
	p.canvas.Clear(render.Lilac)
	p.frameErr = p.app.Render(p.viewport)

	var b strings.Builder
	b.WriteString(p.term.Encode(p.canvas.Image()))
	b.WriteString("\n")
	b.WriteString(p.status())
	return b.String()
}

func (p *Program) statusErr() error {
	if p.frameErr != nil {
		return p.frameErr
	}
	return p.cmdErr
}

func (p *Program) status() string {
	a := p.app
	parts := []string{
		flagStyle.Render(a.Mode.String()),
		statusStyle.Render(fmt.Sprintf("moves %d", a.Moves())),
	}
	if a.Cube.IsSolved() {
		parts = append(parts, flagStyle.Render("solved"))
	}
	if a.AutoRotate {
		parts = append(parts, statusStyle.Render("auto"))
	}
	if a.Paused {
		parts = append(parts, flagStyle.Render("paused"))
	}
	if !a.Edges {
		parts = append(parts, statusStyle.Render("no edges"))
	}
	if p.remote != nil {
		parts = append(parts, statusStyle.Render("ble"))
	}
	if err := p.statusErr(); err != nil {
		parts = append(parts, errorStyle.Render(err.Error()))
	} else {
		parts = append(parts, statusStyle.Render(HelpText))
	}
	line := strings.Join(parts, "  ")
	if p.cols > 0 {
		line = lipgloss.NewStyle().MaxWidth(p.cols).Render(line)
	}
	return line
}
