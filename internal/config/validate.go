package config

import (
	"fmt"
	"slices"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFiles(); err != nil {
		return err
	}
	if err := c.validateUI(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateFiles() error {
	if len(c.Files.Extensions) == 0 {
		return fmt.Errorf("files.extensions must list at least one extension")
	}
	if slices.Contains(c.Files.Extensions, c.Files.SidecarExtension) {
		return fmt.Errorf("files.sidecar_extension %q must not appear in files.extensions", c.Files.SidecarExtension)
	}
	return nil
}

func (c *Config) validateUI() error {
	if _, err := language.Parse(c.UI.Language); err != nil {
		return fmt.Errorf("ui.language: unrecognized tag %q", c.UI.Language)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
