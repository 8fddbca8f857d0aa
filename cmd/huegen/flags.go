package main

import (
	"fmt"
	"os"
	"strings"
)

const (
	formatJSON = "json"
	formatCSS  = "css"
)

func validateGenerateOptions(opts generateOptions) error {
	if strings.TrimSpace(opts.Seed) == "" && strings.TrimSpace(opts.ConfigPath) == "" {
		return fmt.Errorf("either --seed or --config is required")
	}

	if opts.ConfigPath != "" {
		info, err := os.Stat(opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("config file does not exist: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("config path %s is a directory", opts.ConfigPath)
		}
	}

	switch opts.Format {
	case formatJSON, formatCSS:
	default:
		return fmt.Errorf("unknown format %q (expected %s or %s)", opts.Format, formatJSON, formatCSS)
	}

	return nil
}
