package xdg

import (
	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using config.GetDirs().
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

var _ port.XDGPaths = (*Adapter)(nil)
