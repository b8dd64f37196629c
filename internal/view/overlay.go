package view

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors - indigo dark theme
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
)

func initOverlayStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)
}

func (v *View) DrawUI() {
	rl.DrawFPS(10, 10)

	screenH := float32(rl.GetScreenHeight())

	label := "Pause"
	if !v.renderer.Running() {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: 10, Y: screenH - 38, Width: 80, Height: 28}, label) {
		v.togglePause()
	}

	track := gui.CheckBox(rl.Rectangle{X: 104, Y: screenH - 32, Width: 16, Height: 16}, "Track resize", v.renderer.TrackResize())
	if track != v.renderer.TrackResize() {
		v.renderer.SetTrackResize(track)
	}

	if v.DebugMode {
		rl.DrawText(fmt.Sprintf("Frame:    %d", v.last.Frame), 10, 36, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Rotation: %.3f rad", v.last.Rotation), 10, 56, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("uTime:    %.3f s", v.last.Time), 10, 76, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Aspect:   %.3f", v.last.Aspect), 10, 96, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Update:   %.2f ms", v.updateMs), 10, 116, 16, rl.Lime)
		rl.DrawText(fmt.Sprintf("Draw:     %.2f ms", v.drawMs), 10, 136, 16, rl.Lime)
	} else {
		rl.DrawText("F1 debug, Space pause, R resize", 10, 36, 14, rl.DarkGray)
	}
}
