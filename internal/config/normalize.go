package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeFiles()
	c.normalizeUI()
	c.normalizeLogging()
	return c.normalizeHistory()
}

func (c *Config) normalizeFiles() {
	c.Files.Extensions = SanitizeExtensions(c.Files.Extensions)
	if len(c.Files.Extensions) == 0 {
		c.Files.Extensions = append([]string(nil), defaultExtensions...)
	}
	c.Files.SidecarExtension = sanitizeExtension(c.Files.SidecarExtension)
	if c.Files.SidecarExtension == "" {
		c.Files.SidecarExtension = defaultSidecarExtension
	}
}

func (c *Config) normalizeUI() {
	c.UI.Language = strings.ToLower(strings.TrimSpace(c.UI.Language))
	if c.UI.Language == "" {
		c.UI.Language = defaultLanguage
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeHistory() error {
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath
	}
	expanded, err := expandPath(c.History.Path)
	if err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	c.History.Path = expanded
	return nil
}

// SanitizeExtensions cleans a user-provided extension list: entries are
// trimmed, lowercased, and stripped of leading dots; empty entries and
// duplicates are dropped. Order of first occurrence is preserved.
func SanitizeExtensions(values []string) []string {
	cleaned := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		ext := sanitizeExtension(value)
		if ext == "" {
			continue
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		cleaned = append(cleaned, ext)
	}
	return cleaned
}

// ParseExtensionList splits a comma-separated extension string and sanitizes
// the result. This is the format accepted on the command line.
func ParseExtensionList(csv string) []string {
	return SanitizeExtensions(strings.Split(csv, ","))
}

func sanitizeExtension(value string) string {
	ext := strings.ToLower(strings.TrimSpace(value))
	ext = strings.TrimPrefix(ext, ".")
	return strings.TrimSpace(ext)
}
