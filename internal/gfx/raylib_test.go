package gfx

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestTraceLogCapturesWarningsAndErrors(t *testing.T) {
	d := &RaylibDevice{level: rl.LogInfo}

	d.beginCapture()
	d.traceLog(int(rl.LogInfo), "SHADER: [ID 3] Compiling shader...")
	d.traceLog(int(rl.LogWarning), "SHADER: [ID 3] Failed to compile shader code")
	d.traceLog(int(rl.LogError), "0:4(1): error: syntax error")
	got := d.endCapture()

	want := "SHADER: [ID 3] Failed to compile shader code\n0:4(1): error: syntax error"
	if got != want {
		t.Errorf("Expected diagnostic %q, got %q", want, got)
	}
}

func TestTraceLogSkipsInfo(t *testing.T) {
	d := &RaylibDevice{level: rl.LogInfo}

	d.beginCapture()
	d.traceLog(int(rl.LogInfo), "SHADER: [ID 4] Program shader loaded successfully")
	d.traceLog(int(rl.LogDebug), "RLGL: debug line")
	if got := d.endCapture(); got != "" {
		t.Errorf("Expected empty diagnostic, got %q", got)
	}
}

func TestTraceLogOutsideCapture(t *testing.T) {
	d := &RaylibDevice{level: rl.LogInfo}

	d.traceLog(int(rl.LogError), "GLFW: stray error")
	if d.capture != nil {
		t.Fatal("Capture should not start outside a compile or link")
	}

	d.beginCapture()
	d.traceLog(int(rl.LogWarning), "SHADER: link failed")
	d.endCapture()
	d.traceLog(int(rl.LogWarning), "TEXTURE: late warning")

	d.beginCapture()
	if got := d.endCapture(); got != "" {
		t.Errorf("Expected a fresh capture per call, got %q", got)
	}
}
