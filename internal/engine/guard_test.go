// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine implements the dual-timer writing session state machine.
package engine

import (
	"testing"
	"time"
)

var guardBase = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// at returns guardBase shifted by n seconds.
func at(n int) time.Time {
	return guardBase.Add(time.Duration(n) * time.Second)
}

// =============================================================================
// EXPIRY BOUNDARY TESTS
// =============================================================================

func TestGuard_Expired_Boundary(t *testing.T) {
	// Expiry is strictly greater-than: a pause of exactly the timeout is
	// on-time, one second past it is not.
	tests := []struct {
		name    string
		editAt  int
		checkAt int
		timeout int
		want    bool
	}{
		{"well within window", 0, 2, 5, false},
		{"exactly at boundary", 0, 5, 5, false},
		{"one past boundary", 0, 6, 5, true},
		{"far past boundary", 0, 60, 5, true},
		{"minimum timeout boundary", 10, 13, 3, false},
		{"minimum timeout expired", 10, 14, 3, true},
		{"maximum timeout boundary", 0, 15, 15, false},
		{"maximum timeout expired", 0, 16, 15, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var g Guard
			g.RecordEdit(at(tc.editAt))
			got := g.Expired(at(tc.checkAt), tc.timeout)
			if got != tc.want {
				t.Errorf("Expired(edit=%d, check=%d, timeout=%d) = %v, want %v",
					tc.editAt, tc.checkAt, tc.timeout, got, tc.want)
			}
		})
	}
}

func TestGuard_Expired_NoEditMark(t *testing.T) {
	var g Guard
	if g.Expired(at(100), 3) {
		t.Error("Expired should be false when no edit has been recorded")
	}
}

// =============================================================================
// CONSUME EXPIRY TESTS
// =============================================================================

func TestGuard_ConsumeExpiry_OpensNewWindow(t *testing.T) {
	var g Guard
	g.RecordEdit(at(0))

	if !g.Expired(at(10), 5) {
		t.Fatal("window should be expired at t=10")
	}

	// Consuming the expiry resets the mark so the same lapse is not
	// signaled twice.
	g.ConsumeExpiry(at(10))

	if g.Expired(at(11), 5) {
		t.Error("Expired should be false right after ConsumeExpiry")
	}
	if g.Expired(at(15), 5) {
		t.Error("Expired should be false at the new boundary")
	}
	if !g.Expired(at(16), 5) {
		t.Error("Expired should be true once the new window lapses")
	}
}

func TestGuard_Reset(t *testing.T) {
	var g Guard
	g.RecordEdit(at(0))
	g.Reset()

	if _, ok := g.LastEditAt(); ok {
		t.Error("LastEditAt should report unset after Reset")
	}
	if g.Expired(at(100), 3) {
		t.Error("Expired should be false after Reset")
	}
}

// =============================================================================
// IDLE SECONDS TESTS
// =============================================================================

func TestGuard_IdleSeconds(t *testing.T) {
	var g Guard

	if g.IdleSeconds(at(5)) != 0 {
		t.Error("IdleSeconds should be 0 with no edit mark")
	}

	g.RecordEdit(at(10))
	if got := g.IdleSeconds(at(10)); got != 0 {
		t.Errorf("IdleSeconds at edit time = %d, want 0", got)
	}
	if got := g.IdleSeconds(at(14)); got != 4 {
		t.Errorf("IdleSeconds = %d, want 4", got)
	}
}
