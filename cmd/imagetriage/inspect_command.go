package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"imagetriage/internal/classify"
	"imagetriage/internal/config"
	"imagetriage/internal/sidecar"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the rating, label, and destination for one image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("inspect %q: %w", args[0], err)
			}

			key, source := inspectKey(cfg, path)
			folder := classify.Folder(key)

			if jsonOutput {
				return writeJSON(cmd, map[string]any{
					"file":        path,
					"rating":      key.Rating,
					"label":       key.Label,
					"source":      source,
					"destination": folder,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File:        %s\n", path)
			fmt.Fprintf(out, "Rating:      %d\n", key.Rating)
			fmt.Fprintf(out, "Label:       %s\n", displayLabel(key.Label))
			fmt.Fprintf(out, "Source:      %s\n", source)
			fmt.Fprintf(out, "Destination: %s\n", folder)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the inspection result as JSON")
	return cmd
}

// inspectKey resolves the metadata key for one file the same way a run
// would: sidecar first, then embedded metadata when enabled. The file may
// be the sidecar itself or any primary in its group.
func inspectKey(cfg *config.Config, path string) (sidecar.Key, string) {
	sidecarPath := path
	if !strings.EqualFold(filepath.Ext(path), cfg.SidecarExt()) {
		sidecarPath = strings.TrimSuffix(path, filepath.Ext(path)) + cfg.SidecarExt()
	}
	if _, err := os.Stat(sidecarPath); err == nil {
		return sidecar.Read(sidecarPath), "sidecar"
	}
	if cfg.Files.EmbeddedFallback {
		if key := sidecar.ReadEmbedded(path); key.HasMetadata() {
			return key, "embedded"
		}
	}
	return sidecar.Key{}, "none"
}

func displayLabel(label string) string {
	if label == "" {
		return "(none)"
	}
	return cases.Title(language.Und).String(label)
}
