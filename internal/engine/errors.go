// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine implements the dual-timer writing session state machine.
package engine

import "fmt"

// =============================================================================
// ERRORS
// =============================================================================

// InvalidStateError reports an operation attempted in the wrong phase, such
// as starting a session that is already active or editing text while idle.
// These are precondition violations; the caller retries with corrected state
// rather than the engine recovering on its own.
type InvalidStateError struct {
	// Op is the operation that was attempted (e.g. "start", "edit").
	Op string

	// Phase is the phase the session was in at the time.
	Phase Phase
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("engine: cannot %s while session is %s", e.Op, e.Phase)
}

// InvalidConfigError reports a configuration value outside its allowed
// bounds.
type InvalidConfigError struct {
	Field   string
	Message string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("engine: invalid config %s: %s", e.Field, e.Message)
}
