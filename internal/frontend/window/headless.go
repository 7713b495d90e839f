//go:build headless

// Package window runs the machine in a desktop window.
package window

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnavailable is returned when the binary was built without window support.
var ErrUnavailable = errors.New("window frontend is not available in headless builds")

// Run returns ErrUnavailable.
func Run(_ *log.Logger, _ frontend.Machine, _ frontend.Frame, _ frontend.Speaker, _ int) error {
	return ErrUnavailable
}
