// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine implements the dual-timer writing session state machine.
package engine

import "fmt"

// =============================================================================
// SESSION CONFIGURATION
// =============================================================================

const (
	// MinSessionDurationSeconds is the shortest allowed session (5 minutes).
	MinSessionDurationSeconds = 300

	// MaxSessionDurationSeconds is the longest allowed session (180 minutes).
	MaxSessionDurationSeconds = 10800

	// SessionDurationStepSeconds is the session length granularity
	// (5-minute increments).
	SessionDurationStepSeconds = 300

	// MinInactivityTimeoutSeconds is the shortest allowed pause before
	// erasure.
	MinInactivityTimeoutSeconds = 3

	// MaxInactivityTimeoutSeconds is the longest allowed pause before
	// erasure.
	MaxInactivityTimeoutSeconds = 15

	// DefaultSessionDurationSeconds is the default session length (5 minutes).
	DefaultSessionDurationSeconds = 300

	// DefaultInactivityTimeoutSeconds is the default pause before erasure.
	DefaultInactivityTimeoutSeconds = 5
)

// Config holds the per-session timer bounds. A Config is fixed for the
// lifetime of a session; Controller.Configure rejects changes while the
// session is active.
type Config struct {
	// SessionDurationSeconds is the total session length.
	SessionDurationSeconds int

	// InactivityTimeoutSeconds is the longest pause between keystrokes
	// before the buffer is erased.
	InactivityTimeoutSeconds int
}

// DefaultConfig returns the default session configuration: a 5-minute
// session with a 5-second inactivity timeout.
func DefaultConfig() Config {
	return Config{
		SessionDurationSeconds:   DefaultSessionDurationSeconds,
		InactivityTimeoutSeconds: DefaultInactivityTimeoutSeconds,
	}
}

// Validate checks the configuration against the allowed bounds. It returns
// an *InvalidConfigError describing the first violation found.
func (c Config) Validate() error {
	if c.SessionDurationSeconds < MinSessionDurationSeconds ||
		c.SessionDurationSeconds > MaxSessionDurationSeconds {
		return &InvalidConfigError{
			Field: "session_duration_seconds",
			Message: fmt.Sprintf("must be %d-%d, got %d",
				MinSessionDurationSeconds, MaxSessionDurationSeconds,
				c.SessionDurationSeconds),
		}
	}
	if c.SessionDurationSeconds%SessionDurationStepSeconds != 0 {
		return &InvalidConfigError{
			Field: "session_duration_seconds",
			Message: fmt.Sprintf("must be a multiple of %d, got %d",
				SessionDurationStepSeconds, c.SessionDurationSeconds),
		}
	}
	if c.InactivityTimeoutSeconds < MinInactivityTimeoutSeconds ||
		c.InactivityTimeoutSeconds > MaxInactivityTimeoutSeconds {
		return &InvalidConfigError{
			Field: "inactivity_timeout_seconds",
			Message: fmt.Sprintf("must be %d-%d, got %d",
				MinInactivityTimeoutSeconds, MaxInactivityTimeoutSeconds,
				c.InactivityTimeoutSeconds),
		}
	}
	return nil
}
