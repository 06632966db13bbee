// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads the console configuration from TOML or
//              YAML files with defaults and environment variable support.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Typed console configuration

/*
Package config provides the console configuration.

Key Features:
  • TOML and YAML files, format detected from the file extension
  • Defaults for every setting, so an empty file is a valid configuration
  • ${VAR} expansion in the path and in title and prompt
  • Validation with coded errors from the error package

# Loading

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := cfg.Logger("devconsole", os.Stderr)

LoadFromEnv reads the file named by DEVCONSOLE_CONFIG. Without it the
first existing file of ./configs/console.toml, ./console.toml and
~/.config/devconsole/console.toml is used, and Default() when none exists.

# File Layout

	[console]
	title = "Console"
	prompt = "$ "
	history_size = 20
	scrollback_size = 1000
	num_suggestions = 4
	max_input_length = 4096
	command_timeout = "30s"

	[log]
	level = "info"      # trace, debug, info, warn, error
	format = "text"     # json, text, console
	capture = true      # mirror log lines into the console
*/
package config
