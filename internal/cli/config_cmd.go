// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Config command implementation for gauntlet.
//
// Command: config [subcommand]
// Short:   View and modify configuration
//
// Subcommands:
//   show (default)      Display current configuration
//   get <key>           Read one value (dot notation)
//   set <key> <value>   Set a configuration value
//   path                Show configuration file path
//   reset               Reset to default configuration
//
// Examples:
//   gauntlet config show
//   gauntlet config get session.duration_secs
//   gauntlet config set session.timeout_secs 10
//   gauntlet config set ui.theme light
//   gauntlet config reset
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jeranaias/gauntlet-tui/internal/config"
	"github.com/jeranaias/gauntlet-tui/internal/ui/styles"
)

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(args.JSON)

	case "get":
		if args.ConfigKey == "" {
			return fmt.Errorf("usage: gauntlet config get <key>")
		}
		return handleConfigGet(args.ConfigKey)

	case "set":
		if args.ConfigKey == "" || args.ConfigVal == "" {
			return fmt.Errorf("usage: gauntlet config set <key> <value>")
		}
		return handleConfigSet(args.ConfigKey, args.ConfigVal)

	case "path":
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil

	case "reset":
		return handleConfigReset()

	default:
		return fmt.Errorf("unknown config subcommand: %s", args.Subcommand)
	}
}

func handleConfigShow(asJSON bool) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	if asJSON {
		return json.NewEncoder(os.Stdout).Encode(cfg)
	}

	fmt.Println(historyTitleStyle.Render("gauntlet configuration"))
	for _, key := range config.GetAllKeys() {
		val, err := cfg.Get(key)
		if err != nil {
			continue
		}
		printField(key, fmt.Sprintf("%v", val))
	}

	path, err := config.ConfigPath()
	if err == nil {
		fmt.Println()
		fmt.Println(historyMetaStyle.Render("  config: " + path))
	}
	return nil
}

func handleConfigGet(key string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	val, err := cfg.Get(key)
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", val)
	return nil
}

func handleConfigSet(key, value string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println(styles.RenderSuccess(fmt.Sprintf("Set %s = %s", key, value)))
	return nil
}

func handleConfigReset() error {
	if err := config.Save(config.Default()); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Println(styles.RenderSuccess("Configuration reset to defaults"))
	return nil
}
