// Package gui is the raylib front end. It owns the window, camera and
// input loop and delegates all simulation state to the render engine.
package gui

import (
	"fmt"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orbitview/internal/config"
	"github.com/san-kum/orbitview/internal/frame"
	"github.com/san-kum/orbitview/internal/physics"
	"github.com/san-kum/orbitview/internal/render"
	"github.com/san-kum/orbitview/internal/telemetry"
	"github.com/san-kum/orbitview/internal/vec"
)

// Theme colors (monochrome, matching the terminal front end).
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColMarker  = rl.NewColor(120, 120, 120, 160)
	ColAxisX   = rl.NewColor(200, 120, 120, 255)
	ColAxisY   = rl.NewColor(120, 200, 120, 255)
	ColAxisZ   = rl.NewColor(120, 120, 200, 255)
)

const baseFovy = 40.0

type App struct {
	Cfg      *config.Config
	Engine   *render.Engine
	Settings *render.Settings

	Frames   []frame.Selector
	FrameIdx int

	Camera rl.Camera3D
	Zoom   float64
	Scaler *render.OverlayScaler
	Axes   []render.Object

	Running bool
	InMenu  bool
	Presets []string
	Sel     int
	Status  string
	Font    rl.Font
}

func initWindow() {
	rl.InitWindow(1280, 720, "orbitview")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp builds the session. With interactive true the app opens on the
// preset menu, otherwise it loads cfg and starts running immediately.
func NewApp(cfg *config.Config, interactive bool) *App {
	app := &App{
		Presets: config.ListPresets(),
		Zoom:    1.0,
		Camera: rl.NewCamera3D(
			rl.NewVector3(0, 20, 50),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			baseFovy,
			rl.CameraOrthographic,
		),
		Font:    loadFont(),
		InMenu:  interactive,
		Running: !interactive,
	}
	if !interactive {
		if err := app.load(cfg); err != nil {
			app.Status = err.Error()
			app.Running = false
		}
	}
	return app
}

// RunInteractive opens the window on the preset menu and blocks until
// it is closed.
func RunInteractive() {
	initWindow()
	defer rl.CloseWindow()
	NewApp(nil, true).RunLoop()
}

// Run opens the window directly on cfg and blocks until it is closed.
func Run(cfg *config.Config) {
	initWindow()
	defer rl.CloseWindow()
	NewApp(cfg, false).RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) load(cfg *config.Config) error {
	sys, err := cfg.BuildSystem()
	if err != nil {
		return err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	entities := len(sys.Bodies) + 1
	spheres := make([]render.Object, entities)
	markers := make([][]render.Object, entities)
	for i := range spheres {
		col := ColSelect
		radius := 0.6
		if i == 0 {
			// Barycenter renders small and dim.
			col, radius = ColTextDim, 0.25
		}
		spheres[i] = newSphereNode(radius, col)
		markers[i] = make([]render.Object, cfg.Trail)
		for k := range markers[i] {
			markers[i][k] = newMarkerNode(0.3, ColMarker)
		}
	}

	a.Frames = []frame.Selector{frame.FixedFrame(), frame.BarycentricFrame()}
	for i := range sys.Bodies {
		a.Frames = append(a.Frames, frame.BodyFrame(i))
	}
	a.FrameIdx = 0
	for i, f := range a.Frames {
		if f == settings.Frame {
			a.FrameIdx = i
		}
	}

	a.Axes = []render.Object{
		newAxisNode(vec.Vec3{X: 1}, ColAxisX),
		newAxisNode(vec.Vec3{Y: 1}, ColAxisY),
		newAxisNode(vec.Vec3{Z: 1}, ColAxisZ),
	}

	a.Cfg = cfg
	a.Engine = render.NewEngine(sys, physics.NewIntegrator(cfg.Integrator), settings, spheres, markers)
	a.Settings = settings
	a.Zoom = 1.0
	a.Scaler = render.NewOverlayScaler(0)
	a.Status = ""
	return nil
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		rl.CloseWindow()
		os.Exit(0)
	}

	if a.InMenu {
		a.updateMenu()
		return
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		a.InMenu = true
		a.Running = false
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyF) && len(a.Frames) > 0 {
		a.FrameIdx = (a.FrameIdx + 1) % len(a.Frames)
		a.Settings.Frame = a.Frames[a.FrameIdx]
	}
	if rl.IsKeyPressed(rl.KeyEqual) {
		a.Settings.Scale *= 1.25
	}
	if rl.IsKeyPressed(rl.KeyMinus) {
		a.Settings.Scale /= 1.25
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		a.Settings.Speed *= 1.5
	}
	if rl.IsKeyPressed(rl.KeyComma) {
		a.Settings.Speed /= 1.5
	}
	if rl.IsKeyPressed(rl.KeyR) && a.Cfg != nil {
		if err := a.load(a.Cfg); err != nil {
			a.Status = err.Error()
		} else {
			a.Running = true
		}
	}

	// Orbit with right mouse drag.
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		a.orbit(float64(delta.X)*0.005, float64(delta.Y)*0.005)
	}

	// Wheel zooms by adjusting the orthographic extent. The overlay
	// scaler counters the zoom so the axes keep their apparent size.
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.Zoom = math.Min(1e6, math.Max(1e-6, a.Zoom*math.Pow(1.1, float64(wheel))))
	}
	a.Camera.Fovy = float32(baseFovy / a.Zoom)

	if a.Running && a.Engine != nil {
		if err := a.Engine.Tick(); err != nil {
			a.Status = err.Error()
			a.Running = false
		} else {
			a.Status = ""
		}
	}
	if a.Scaler != nil {
		a.Scaler.Rescale(baseFovy, a.Zoom, a.Axes)
	}
}

// orbit rotates the camera position about the target.
func (a *App) orbit(yaw, pitch float64) {
	to := rl.Vector3Subtract(a.Camera.Position, a.Camera.Target)
	r := float64(rl.Vector3Length(to))
	theta := math.Atan2(float64(to.X), float64(to.Z)) + yaw
	phi := math.Asin(float64(to.Y)/r) + pitch
	phi = math.Max(-1.5, math.Min(1.5, phi))

	a.Camera.Position = rl.NewVector3(
		a.Camera.Target.X+float32(r*math.Cos(phi)*math.Sin(theta)),
		a.Camera.Target.Y+float32(r*math.Sin(phi)),
		a.Camera.Target.Z+float32(r*math.Cos(phi)*math.Cos(theta)),
	)
}

func (a *App) updateMenu() {
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.Sel = (a.Sel + 1) % len(a.Presets)
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.Sel--
		if a.Sel < 0 {
			a.Sel = len(a.Presets) - 1
		}
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
		cfg := config.GetPreset(a.Presets[a.Sel])
		if err := a.load(cfg); err != nil {
			a.Status = err.Error()
			return
		}
		a.InMenu = false
		a.Running = true
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.InMenu {
		a.drawMenu()
	} else {
		a.drawScene()
		a.drawHUD()
	}

	rl.EndDrawing()
}

func (a *App) drawScene() {
	if a.Engine == nil {
		return
	}
	rl.BeginMode3D(a.Camera)

	for _, row := range a.Engine.Markers {
		for _, m := range row {
			m.(*markerNode).draw()
		}
	}
	for _, s := range a.Engine.Spheres {
		s.(*sphereNode).draw()
	}
	for _, ax := range a.Axes {
		ax.(*axisNode).draw()
	}

	rl.EndMode3D()
}

func (a *App) drawHUD() {
	a.drawText("orbitview", 30, 30, 24, ColSelect)
	if a.Cfg != nil {
		a.drawText(fmt.Sprintf(":: %s", a.Cfg.Name), 180, 34, 16, ColText)
	}

	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, 1150, 30, 16, col)
	if a.Status != "" {
		a.drawText(a.Status, 30, 60, 16, rl.Red)
	}

	if a.Engine != nil {
		stats := telemetry.Collect(a.Engine)
		y := 100
		for _, line := range stats.Lines() {
			a.drawText(line, 30, y, 16, ColAccent)
			y += 22
		}
	}

	a.drawText("[SPACE] PAUSE  [F] FRAME  [-/=] SCALE  [,/.] SPEED  [R] RESET  [ESC] MENU  [Q] QUIT", 330, 680, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, 680, 14, ColTextDim)
}

func (a *App) drawMenu() {
	a.drawText("orbitview", 50, 50, 40, ColSelect)
	a.drawText("Select System", 50, 100, 16, ColTextDim)

	y := 160
	for i, name := range a.Presets {
		if i == a.Sel {
			a.drawText(fmt.Sprintf("> %s", name), 50, y, 20, ColSelect)
		} else {
			a.drawText(fmt.Sprintf("  %s", name), 50, y, 20, ColText)
		}
		y += 28
	}

	if a.Status != "" {
		a.drawText(a.Status, 50, y+20, 16, rl.Red)
	}
	a.drawText("ARROWS: NAVIGATE  ENTER: SELECT  Q: QUIT", 850, 680, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
