package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"imagetriage/internal/triage"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

func renderSummary(out io.Writer, s *triage.Summary) {
	colorize := shouldColorize(out)

	title := fmt.Sprintf("%s run %s on %s",
		cases.Title(language.Und).String(string(s.Mode)), shortRunID(s.RunID), s.Folder)
	if colorize {
		title = ansiBlue + title + ansiReset
	}
	fmt.Fprintln(out, title)

	fmt.Fprintf(out, "  Groups:  %d\n", s.Groups)
	fmt.Fprintln(out, countLine("Moved", s.Moved, ansiGreen, colorize && s.Moved > 0))
	fmt.Fprintln(out, countLine("Skipped", s.Skipped, ansiYellow, colorize && s.Skipped > 0))
	fmt.Fprintln(out, countLine("Failed", s.Failed, ansiRed, colorize && s.Failed > 0))
	if s.NoSidecar > 0 {
		fmt.Fprintf(out, "  Without sidecar: %d\n", s.NoSidecar)
	}
	if s.NoMetadata > 0 {
		fmt.Fprintf(out, "  Without metadata: %d\n", s.NoMetadata)
	}
	if s.LeftInPlace > 0 {
		fmt.Fprintf(out, "  Left in place:   %d\n", s.LeftInPlace)
	}
	if s.RemovedFolders > 0 {
		fmt.Fprintf(out, "  Removed folders: %d\n", s.RemovedFolders)
	}
	fmt.Fprintf(out, "  Duration: %s\n", s.Duration.Round(time.Millisecond))

	if s.Cancelled {
		line := "  Run cancelled before completion"
		if colorize {
			line = ansiYellow + line + ansiReset
		}
		fmt.Fprintln(out, line)
	}

	if len(s.Distribution) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderDistributionTable(s.Distribution))
	}

	for _, failure := range s.Failures {
		line := fmt.Sprintf("  failed: %s (%s)", failure.Path, failure.Reason)
		if colorize {
			line = ansiRed + line + ansiReset
		}
		fmt.Fprintln(out, line)
	}
}

func countLine(label string, count int, color string, colorize bool) string {
	line := fmt.Sprintf("  %-8s %d", label+":", count)
	if colorize {
		return color + line + ansiReset
	}
	return line
}

func renderDistributionTable(distribution map[string]int) string {
	folders := make([]string, 0, len(distribution))
	for folder := range distribution {
		folders = append(folders, folder)
	}
	sort.Strings(folders)

	rows := make([][]string, 0, len(folders))
	for _, folder := range folders {
		rows = append(rows, []string{folder, strconv.Itoa(distribution[folder])})
	}
	return renderTable([]string{"Destination", "Files"}, rows, []columnAlignment{alignLeft, alignRight})
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
