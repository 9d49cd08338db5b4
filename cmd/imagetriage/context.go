package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"imagetriage/internal/config"
	"imagetriage/internal/logging"
	"imagetriage/internal/runlog"
	"imagetriage/internal/triage"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// newRunner assembles a triage runner from the loaded configuration. The
// history store is opened lazily per command and may be absent; the caller
// owns closing it when non-nil.
func (c *commandContext) newRunner(cmd *cobra.Command) (*triage.Runner, *runlog.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	store := c.openHistory(cfg, logger)
	return triage.NewRunner(cfg, store, logger), store, nil
}

func (c *commandContext) openHistory(cfg *config.Config, logger *slog.Logger) *runlog.Store {
	if !cfg.History.Enabled {
		return nil
	}
	store, err := runlog.Open(cfg.History.Path)
	if err != nil {
		logger.Warn("run history unavailable",
			logging.String("path", cfg.History.Path),
			logging.Error(err))
		return nil
	}
	return store
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
