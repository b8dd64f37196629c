// Package view owns the window: it acquires the GL context, builds the cube
// program and drives the scene renderer once per display refresh.
package view

import (
	"context"
	"fmt"
	"log"
	"time"

	"spincube/internal/assets"
	"spincube/internal/config"
	"spincube/internal/gfx"
	"spincube/internal/scene"
	"spincube/internal/shader"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type View struct {
	Config    config.Config
	DebugMode bool

	dev      *gfx.RaylibDevice
	program  *shader.Program
	renderer *scene.Renderer

	start float64
	last  scene.FrameStats

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg config.Config) *View {
	return &View{
		Config: cfg,
	}
}

// Run opens the window and renders until it is closed or ctx is done. Shader
// compile and link failures are returned before the first frame.
func (v *View) Run(ctx context.Context) error {
	if err := v.Config.Validate(); err != nil {
		return fmt.Errorf("view config: %w", err)
	}

	// Route raylib's log before the window exists
	v.dev = gfx.NewRaylibDevice(v.Config.TraceLogLevel())

	var flags uint32 = rl.FlagMsaa4xHint
	if v.Config.VSync {
		flags |= rl.FlagVsyncHint
	}
	if v.Config.TrackResize {
		flags |= rl.FlagWindowResizable
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(v.Config.Width), int32(v.Config.Height), v.Config.Title)
	defer rl.CloseWindow()

	if v.Config.TargetFPS > 0 {
		rl.SetTargetFPS(int32(v.Config.TargetFPS))
	}

	if err := v.initialize(); err != nil {
		return err
	}
	defer v.unload()

	initOverlayStyle()

	v.start = rl.GetTime()
	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			log.Printf("View: %v, closing", context.Cause(ctx))
			break
		}
		v.Update()
		v.Draw()
	}
	return nil
}

// initialize runs once the GL context exists.
func (v *View) initialize() error {
	v.dev.EnableDepthTest()

	vsSrc, err := assets.LoadShaderSource(v.Config.Shaders.Vertex, assets.DefaultVertexShader)
	if err != nil {
		return fmt.Errorf("vertex shader: %w", err)
	}
	fsSrc, err := assets.LoadShaderSource(v.Config.Shaders.Fragment, assets.DefaultFragmentShader)
	if err != nil {
		return fmt.Errorf("fragment shader: %w", err)
	}

	v.program, err = shader.Build(v.dev, vsSrc, fsSrc)
	if err != nil {
		return fmt.Errorf("build cube program: %w", err)
	}

	v.renderer, err = scene.NewRenderer(v.dev, v.program, scene.Options{
		Stepper:     newStepper(v.Config.Rotation),
		TrackResize: v.Config.TrackResize,
		ClearColor:  v.Config.Color(),
	})
	if err != nil {
		v.program.Delete()
		return err
	}

	log.Printf("View: %dx%d, rotation %s", v.Config.Width, v.Config.Height, v.Config.Rotation.Mode)
	return nil
}

func newStepper(r config.Rotation) scene.Stepper {
	if r.Mode == config.RotationElapsed {
		return scene.NewElapsedStep(r.Rate)
	}
	return scene.FixedStep(r.Step)
}

func (v *View) Update() {
	updateStart := time.Now()

	// Toggle debug mode
	if rl.IsKeyPressed(rl.KeyF1) {
		v.DebugMode = !v.DebugMode
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		v.togglePause()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		v.renderer.SetTrackResize(!v.renderer.TrackResize())
	}

	v.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (v *View) togglePause() {
	if v.renderer.Running() {
		v.renderer.Stop()
		log.Printf("View: paused at %.3f rad", v.renderer.Rotation())
	} else {
		v.renderer.Start()
		log.Println("View: resumed")
	}
}

// Timestamp is milliseconds since the first frame.
func (v *View) Timestamp() float64 {
	return (rl.GetTime() - v.start) * 1000
}

func (v *View) Draw() {
	rl.BeginDrawing()

	drawStart := time.Now()
	v.last = v.renderer.Frame(v.Timestamp())
	v.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	// The overlay is flat; keep it out of the cube's depth buffer
	rl.DisableDepthTest()
	v.DrawUI()
	rl.DrawRenderBatchActive()
	v.dev.EnableDepthTest()

	rl.EndDrawing()
}

func (v *View) unload() {
	v.renderer.Close()
	v.program.Delete()
	assets.Unload()
}
