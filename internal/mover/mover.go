// Package mover relocates file groups into a destination folder, one file
// at a time. Every filesystem failure is converted into an Outcome at this
// boundary; nothing escapes as an error past the batch orchestrator.
package mover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"imagetriage/internal/fileutil"
)

// Status classifies the result of one file move attempt.
type Status string

const (
	StatusMoved   Status = "moved"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Reasons attached to failed outcomes.
const (
	ReasonDestinationExists = "destination exists"
	ReasonSourceVanished    = "source vanished"
	ReasonPermissionDenied  = "permission denied"
)

// Outcome records what happened to a single file.
type Outcome struct {
	Path   string
	Status Status
	Reason string
}

// GroupResult aggregates the outcomes for one file group.
type GroupResult struct {
	Base     string
	Outcomes []Outcome
}

// Moved counts files that reached the destination.
func (r GroupResult) Moved() int { return r.count(StatusMoved) }

// Failed counts files that could not be moved.
func (r GroupResult) Failed() int { return r.count(StatusFailed) }

func (r GroupResult) count(status Status) int {
	n := 0
	for _, outcome := range r.Outcomes {
		if outcome.Status == status {
			n++
		}
	}
	return n
}

// MoveFiles moves every path into destDir, creating the directory on
// demand. Attempts are independent: a failure on one file does not abort
// the rest of the group and already-moved files stay moved. A destination
// collision is a per-file failure, never an overwrite.
func MoveFiles(base string, paths []string, destDir string) GroupResult {
	result := GroupResult{Base: base, Outcomes: make([]Outcome, 0, len(paths))}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		for _, path := range paths {
			result.Outcomes = append(result.Outcomes, failedOutcome(path, err))
		}
		return result
	}

	for _, path := range paths {
		result.Outcomes = append(result.Outcomes, moveFile(path, destDir))
	}
	return result
}

func moveFile(src, destDir string) Outcome {
	dst := filepath.Join(destDir, filepath.Base(src))

	if _, err := os.Lstat(dst); err == nil {
		return Outcome{Path: src, Status: StatusFailed, Reason: ReasonDestinationExists}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return failedOutcome(src, err)
	}

	if err := fileutil.MoveFile(src, dst); err != nil {
		return failedOutcome(src, err)
	}
	return Outcome{Path: src, Status: StatusMoved}
}

func failedOutcome(src string, err error) Outcome {
	return Outcome{Path: src, Status: StatusFailed, Reason: failureReason(err)}
}

// failureReason collapses filesystem errors into the short reasons the run
// summary reports.
func failureReason(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ReasonSourceVanished
	case errors.Is(err, fs.ErrPermission):
		return ReasonPermissionDenied
	case errors.Is(err, fs.ErrExist):
		return ReasonDestinationExists
	default:
		return fmt.Sprintf("%v", err)
	}
}
