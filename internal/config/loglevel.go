package config

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var logLevels = map[string]rl.TraceLogLevel{
	"trace":   rl.LogTrace,
	"debug":   rl.LogDebug,
	"info":    rl.LogInfo,
	"warn":    rl.LogWarning,
	"warning": rl.LogWarning,
	"error":   rl.LogError,
	"none":    rl.LogNone,
}

// TraceLogLevel maps log_level onto raylib's levels, defaulting to info.
func (c Config) TraceLogLevel() rl.TraceLogLevel {
	if level, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return level
	}
	return rl.LogInfo
}

// Color returns clear_color as a raylib color.
func (c Config) Color() rl.Color {
	return rl.NewColor(c.ClearColor[0], c.ClearColor[1], c.ClearColor[2], c.ClearColor[3])
}
