// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for gauntlet.
//
// Configuration is stored as TOML at ~/.gauntlet/config.toml. Loading fills
// missing fields from defaults, applies GAUNTLET_* environment overrides, and
// validates the result; the session timer bounds are shared with the engine
// package so every entry point enforces the same limits.
//
// # Key Types
//
//   - Config: the complete application configuration
//   - SessionConfig: session duration and inactivity timeout
//   - Watcher: fsnotify-based config file watcher with debounce
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctl, err := engine.NewController(cfg.Engine(), sink)
//
// A thread-safe singleton is available through config.Global() for code paths
// that do not thread a *Config through explicitly.
package config
