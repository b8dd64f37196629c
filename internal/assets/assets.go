package assets

import (
	"embed"
	"fmt"
	"os"
)

//go:embed shaders/cube.vs shaders/cube.fs
var builtin embed.FS

const (
	DefaultVertexShader   = "shaders/cube.vs"
	DefaultFragmentShader = "shaders/cube.fs"
)

var manager *Manager

// Manager caches shader sources by path so repeated loads hit the disk once.
type Manager struct {
	sources map[string]string
}

func Init() {
	manager = &Manager{
		sources: make(map[string]string),
	}
}

// Builtin returns one of the embedded default sources.
func Builtin(name string) (string, error) {
	data, err := builtin.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("builtin shader: %w", err)
	}
	return string(data), nil
}

// LoadShaderSource reads a shader source from disk, caching it for reuse.
// An empty path yields the embedded default named by fallback.
func LoadShaderSource(path, fallback string) (string, error) {
	if path == "" {
		return Builtin(fallback)
	}

	if manager == nil {
		Init()
	}

	if src, exists := manager.sources[path]; exists {
		return src, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read shader: %w", err)
	}

	src := string(data)
	manager.sources[path] = src
	return src, nil
}

// Unload drops every cached source.
func Unload() {
	if manager == nil {
		return
	}
	manager.sources = make(map[string]string)
}
