//go:build headless

// Package terminal runs the machine inside a text terminal.
package terminal

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnavailable is returned when the binary was built without terminal support.
var ErrUnavailable = errors.New("terminal frontend is not available in headless builds")

// Run returns ErrUnavailable.
func Run(_ *log.Logger, _ frontend.Machine, _ frontend.Frame, _ frontend.Speaker) error {
	return ErrUnavailable
}
