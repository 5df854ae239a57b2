package main

import (
	"fmt"
	"os"
	"strings"

	tui "github.com/grindlemire/go-tuicore"
)

// BorderEnv selects the border set used by the dashboard panels.
const BorderEnv = "TUI_DEMO_BORDER"

type config struct {
	border     tui.BorderSet
	borderName string
}

func loadConfig() (config, error) {
	return parseConfig(os.Getenv)
}

func parseConfig(getenv func(string) string) (config, error) {
	name := getenv(BorderEnv)
	if name == "" {
		name = "rounded"
	}
	set, ok := tui.BorderSetByName(name)
	if !ok {
		return config{}, fmt.Errorf("unknown %s %q (valid: %s)", BorderEnv, name, strings.Join(tui.BorderSetNames(), ", "))
	}
	return config{border: set, borderName: strings.ToLower(strings.TrimSpace(name))}, nil
}
