package gfx

import (
	"log"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GL enums rlgl expects as plain ints.
const (
	glFragmentShader = 0x8B30
	glVertexShader   = 0x8B31
	glFloat          = 0x1406
)

// RaylibDevice implements Device on raylib's rlgl layer. It must be created
// and used on the thread that owns the window.
//
// rlgl reports compile and link logs only through raylib's trace log, so the
// device installs a trace-log callback. Every message is forwarded to the
// standard logger; while a compile or link is in flight, warnings and errors
// are also collected as that call's diagnostic.
type RaylibDevice struct {
	level   rl.TraceLogLevel
	capture *strings.Builder
}

// NewRaylibDevice installs the trace-log callback. Call it before
// rl.InitWindow so window and context messages go through the same logger.
func NewRaylibDevice(level rl.TraceLogLevel) *RaylibDevice {
	d := &RaylibDevice{}
	d.SetLogLevel(level)
	rl.SetTraceLogCallback(d.traceLog)
	return d
}

// SetLogLevel sets the lowest level forwarded to the logger. raylib itself is
// kept at warning or below so shader diagnostics always reach the capture.
func (d *RaylibDevice) SetLogLevel(level rl.TraceLogLevel) {
	d.level = level
	if level > rl.LogWarning {
		level = rl.LogWarning
	}
	rl.SetTraceLogLevel(level)
}

func (d *RaylibDevice) traceLog(logType int, text string) {
	level := rl.TraceLogLevel(logType)
	if d.capture != nil && level >= rl.LogWarning {
		if d.capture.Len() > 0 {
			d.capture.WriteByte('\n')
		}
		d.capture.WriteString(text)
	}
	if level < d.level {
		return
	}
	log.Printf("raylib %s: %s", levelName(level), text)
}

func levelName(level rl.TraceLogLevel) string {
	switch level {
	case rl.LogTrace:
		return "TRACE"
	case rl.LogDebug:
		return "DEBUG"
	case rl.LogInfo:
		return "INFO"
	case rl.LogWarning:
		return "WARNING"
	case rl.LogError:
		return "ERROR"
	case rl.LogFatal:
		return "FATAL"
	}
	return "LOG"
}

func (d *RaylibDevice) beginCapture() {
	d.capture = &strings.Builder{}
}

func (d *RaylibDevice) endCapture() string {
	s := d.capture.String()
	d.capture = nil
	return s
}

func (d *RaylibDevice) CompileShader(stage Stage, source string) (uint32, string) {
	kind := int32(glVertexShader)
	if stage == StageFragment {
		kind = glFragmentShader
	}
	d.beginCapture()
	id := rl.CompileShader(source, kind)
	return id, d.endCapture()
}

func (d *RaylibDevice) LinkProgram(vs, fs uint32) (uint32, string) {
	d.beginCapture()
	id := rl.LoadShaderProgram(vs, fs)
	return id, d.endCapture()
}

func (d *RaylibDevice) DeleteProgram(id uint32) {
	rl.UnloadShaderProgram(id)
}

func (d *RaylibDevice) AttribLocation(program uint32, name string) int32 {
	return rl.GetLocationAttrib(program, name)
}

func (d *RaylibDevice) UniformLocation(program uint32, name string) int32 {
	return rl.GetLocationUniform(program, name)
}

func (d *RaylibDevice) UseProgram(program uint32) {
	// Flush anything raylib batched under its default shader first.
	rl.DrawRenderBatchActive()
	rl.EnableShader(program)
}

func (d *RaylibDevice) LoadVertexArray() uint32 {
	vao := rl.LoadVertexArray()
	rl.EnableVertexArray(vao)
	return vao
}

func (d *RaylibDevice) LoadVertexBuffer(data []float32) uint32 {
	return rl.LoadVertexBuffer(data, false)
}

func (d *RaylibDevice) LoadIndexBuffer(data []uint16) uint32 {
	return rl.LoadVertexBufferElement(data, false)
}

func (d *RaylibDevice) EnableAttrib(loc int32, components int32) {
	rl.SetVertexAttribute(uint32(loc), components, glFloat, false, 0, 0)
	rl.EnableVertexAttribute(uint32(loc))
	// The vertex array keeps the layout; leave raylib's batch its own binding.
	rl.DisableVertexArray()
}

func (d *RaylibDevice) DeleteVertexArray(id uint32) {
	rl.UnloadVertexArray(id)
}

func (d *RaylibDevice) DeleteBuffer(id uint32) {
	rl.UnloadVertexBuffer(id)
}

func (d *RaylibDevice) SetUniformMatrix(loc int32, m rl.Matrix) {
	rl.SetUniformMatrix(loc, m)
}

func (d *RaylibDevice) SetUniformFloat(loc int32, v float32) {
	rl.SetUniform(loc, []float32{v}, int32(rl.ShaderUniformFloat), 1)
}

func (d *RaylibDevice) EnableDepthTest() {
	rl.EnableDepthTest()
}

func (d *RaylibDevice) Clear(color rl.Color) {
	rl.ClearBackground(color)
}

func (d *RaylibDevice) DrawIndexed(vao uint32, count int32) {
	if rl.EnableVertexArray(vao) {
		rl.DrawVertexArrayElements[uint16](0, count, nil)
	}
	rl.DisableVertexArray()
	rl.DisableShader()
}

func (d *RaylibDevice) Size() (int, int) {
	return rl.GetRenderWidth(), rl.GetRenderHeight()
}
