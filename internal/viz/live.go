// Package viz renders the simulation in the terminal: a braille canvas
// for the 3D view and lipgloss panes for telemetry. It consumes the
// same render engine as the raylib front end.
package viz

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitview/internal/config"
	"github.com/san-kum/orbitview/internal/frame"
	"github.com/san-kum/orbitview/internal/physics"
	"github.com/san-kum/orbitview/internal/render"
	"github.com/san-kum/orbitview/internal/telemetry"
	"github.com/san-kum/orbitview/internal/vec"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
	graphLen     = 120
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(42)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// node is a terminal-side scene object the engine writes into.
type node struct {
	pos  vec.Vec3
	rot  vec.Quat
	size float64
}

func newNode(size float64) *node { return &node{rot: vec.Identity(), size: size} }

func (n *node) Position() vec.Vec3      { return n.pos }
func (n *node) SetPosition(p vec.Vec3)  { n.pos = p }
func (n *node) SetRotation(q vec.Quat)  { n.rot = q }
func (n *node) ScaleGeometry(f float64) { n.size *= f }

type TickMsg time.Time

// Model is the bubbletea application state.
type Model struct {
	cfg      *config.Config
	engine   *render.Engine
	settings *render.Settings

	canvas  *Canvas
	camera  *Camera
	scaler  *render.OverlayScaler
	overlay []render.Object

	frames   []frame.Selector
	frameIdx int

	momentum []float64
	running  bool
	status   string
}

// NewModel builds the terminal session for one config.
func NewModel(cfg *config.Config) (Model, error) {
	sys, err := cfg.BuildSystem()
	if err != nil {
		return Model{}, err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return Model{}, err
	}

	entities := len(sys.Bodies) + 1
	spheres := make([]render.Object, entities)
	markers := make([][]render.Object, entities)
	for i := range spheres {
		spheres[i] = newNode(1)
		markers[i] = make([]render.Object, cfg.Trail)
		for k := range markers[i] {
			markers[i][k] = newNode(0.5)
		}
	}

	frames := []frame.Selector{frame.FixedFrame(), frame.BarycentricFrame()}
	for i := range sys.Bodies {
		frames = append(frames, frame.BodyFrame(i))
	}
	frameIdx := 0
	for i, f := range frames {
		if f == settings.Frame {
			frameIdx = i
		}
	}

	overlay := make([]render.Object, 3)
	axes := []vec.Vec3{{X: 1}, {Y: 1}, {Z: 1}}
	for i, a := range axes {
		n := newNode(1)
		n.SetPosition(a)
		overlay[i] = n
	}

	return Model{
		cfg:      cfg,
		engine:   render.NewEngine(sys, physics.NewIntegrator(cfg.Integrator), settings, spheres, markers),
		settings: settings,
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		camera:   NewCamera(),
		scaler:   render.NewOverlayScaler(0),
		overlay:  overlay,
		frames:   frames,
		frameIdx: frameIdx,
		momentum: make([]float64, 0, graphLen),
		running:  true,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "f":
			m.frameIdx = (m.frameIdx + 1) % len(m.frames)
			m.settings.Frame = m.frames[m.frameIdx]
		case "+", "=":
			m.settings.Scale *= 1.25
		case "-", "_":
			m.settings.Scale /= 1.25
		case ".":
			m.settings.Speed *= 1.5
		case ",":
			m.settings.Speed /= 1.5
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "z":
			m.camera.RotateZ(0.1)
		case "Z":
			m.camera.RotateZ(-0.1)
		case "i":
			m.camera.ZoomIn()
		case "o":
			m.camera.ZoomOut()
		case "r":
			fresh, err := NewModel(m.cfg)
			if err != nil {
				m.status = err.Error()
				return m, nil
			}
			fresh.camera = m.camera
			return fresh, nil
		}
	case TickMsg:
		if m.running {
			if err := m.engine.Tick(); err != nil {
				m.status = err.Error()
				m.running = false
			} else {
				m.status = ""
				m.trackMomentum()
			}
		}
		m.scaler.Rescale(3.0, m.camera.Zoom, m.overlay)
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) trackMomentum() {
	m.momentum = append(m.momentum, m.engine.Sys.Momentum().Length())
	if len(m.momentum) > graphLen {
		m.momentum = m.momentum[1:]
	}
}

func (m *Model) draw() {
	m.canvas.Clear()

	// Overlay axes radiate from the render origin.
	for _, o := range m.overlay {
		x0, y0, v0 := m.camera.Project(vec.Vec3{}, m.canvas)
		x1, y1, v1 := m.camera.Project(o.Position(), m.canvas)
		if v0 || v1 {
			m.canvas.DrawLine(x0, y0, x1, y1)
		}
	}

	for _, row := range m.engine.Markers {
		for _, mk := range row {
			n := mk.(*node)
			if x, y, ok := m.camera.Project(n.pos, m.canvas); ok {
				m.canvas.Set(x, y)
			}
		}
	}

	// Spheres draw as small crosses so they read over the trails.
	for _, s := range m.engine.Spheres {
		n := s.(*node)
		if x, y, ok := m.camera.Project(n.pos, m.canvas); ok {
			m.canvas.Set(x, y)
			m.canvas.Set(x+1, y)
			m.canvas.Set(x-1, y)
			m.canvas.Set(x, y+1)
			m.canvas.Set(x, y-1)
		}
	}
}

func (m Model) View() string {
	m.draw()

	var s strings.Builder
	s.WriteString(headerStyle.Render("ORBITVIEW "+strings.ToUpper(m.cfg.Name)) + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.status != "" {
		status = errStyle.Render(m.status)
	}
	s.WriteString(status + "\n")

	stats := telemetry.Collect(m.engine)
	var pane strings.Builder
	for _, line := range stats.Lines() {
		pane.WriteString(labelStyle.Render(line) + "\n")
	}
	if len(m.momentum) > 1 {
		pane.WriteString("\n" + asciigraph.Plot(m.momentum,
			asciigraph.Height(6),
			asciigraph.Width(32),
			asciigraph.Caption("|p|"),
		))
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(pane.String()),
	)
	s.WriteString(view)
	s.WriteString(helpStyle.Render(
		"space pause · f frame · +/- scale · ,/. speed · x/y/z rotate · i/o zoom · r reset · q quit"))
	return s.String()
}
