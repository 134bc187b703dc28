// chatbar demo host - mounts the chat widget in a terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/jeranaias/chatbar"
	"github.com/jeranaias/chatbar/internal/config"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", config.DefaultPath(), "path to TOML config file")
		baseURL     = flag.String("api", "", "widget backend base URL (overrides config)")
		widgetKey   = flag.String("key", "", "widget key (overrides config)")
		color       = flag.String("color", "", "primary accent color (overrides config)")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("chatbar %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: chatbar needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override the config file.
	if *baseURL != "" {
		cfg.APIBaseURL = *baseURL
	}
	if *widgetKey != "" {
		cfg.WidgetKey = *widgetKey
	}
	if *color != "" {
		cfg.PrimaryColor = *color
	}

	w, err := chatbar.NewFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Set api_base_url and widget_key in the config file, or pass -api and -key.")
		os.Exit(1)
	}
	defer w.Teardown()

	if err := w.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running chatbar: %v\n", err)
		os.Exit(1)
	}
}
