// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netlog

import (
	"log/slog"
	"sync/atomic"
)

// LoggingController accepts capture verbosity commands. Views depend
// on this interface rather than on [Controller] so tests can record
// the commands they issue.
type LoggingController interface {
	SetLogLevel(level LogLevel)
}

// Controller owns the global capture verbosity. The level is read by
// capture producers on their own goroutine, so it is held atomically.
type Controller struct {
	level  atomic.Int32
	logger *slog.Logger
}

// NewController returns a controller starting at initial. A nil
// logger discards.
func NewController(initial LogLevel, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	controller := &Controller{logger: logger}
	controller.level.Store(int32(initial))
	return controller
}

// SetLogLevel changes the capture verbosity. Takes effect on the next
// captured event.
func (controller *Controller) SetLogLevel(level LogLevel) {
	previous := LogLevel(controller.level.Swap(int32(level)))
	if previous != level {
		controller.logger.Info("capture log level changed",
			"from", previous.String(),
			"to", level.String(),
		)
	}
}

// LogLevel returns the current capture verbosity.
func (controller *Controller) LogLevel() LogLevel {
	return LogLevel(controller.level.Load())
}
