package triage

import (
	"time"

	"imagetriage/internal/mover"
)

// Mode selects the direction of a run.
type Mode string

const (
	ModeProcess Mode = "process"
	ModeGather  Mode = "gather"
)

// Failure identifies one file that could not be moved.
type Failure struct {
	Group  string `json:"group"`
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Summary aggregates the outcome of one run. Counts are per file except
// Groups, which counts enumerated units of work.
type Summary struct {
	RunID     string        `json:"run_id"`
	Mode      Mode          `json:"mode"`
	Folder    string        `json:"folder"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`

	Groups  int `json:"groups"`
	Moved   int `json:"moved"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`

	// Process-mode detail: why groups resolved to the no-metadata key and
	// how many files stayed put because unrated moves are inhibited.
	NoSidecar   int `json:"no_sidecar,omitempty"`
	NoMetadata  int `json:"no_metadata,omitempty"`
	LeftInPlace int `json:"left_in_place,omitempty"`

	// Gather-mode detail: emptied subfolders removed after the run.
	RemovedFolders int `json:"removed_folders,omitempty"`

	Cancelled bool `json:"cancelled,omitempty"`

	// Distribution maps destination folder name to files moved into it.
	Distribution map[string]int `json:"distribution,omitempty"`
	Failures     []Failure      `json:"failures,omitempty"`
}

func newSummary(mode Mode, runID, folder string) *Summary {
	return &Summary{
		RunID:        runID,
		Mode:         mode,
		Folder:       folder,
		StartedAt:    time.Now().UTC(),
		Distribution: make(map[string]int),
	}
}

// absorb folds one group result into the run totals. destFolder is empty
// for gather moves, which return files to the run folder itself.
func (s *Summary) absorb(result mover.GroupResult, destFolder string) {
	for _, outcome := range result.Outcomes {
		switch outcome.Status {
		case mover.StatusMoved:
			s.Moved++
			if destFolder != "" {
				s.Distribution[destFolder]++
			}
		case mover.StatusSkipped:
			s.Skipped++
		case mover.StatusFailed:
			s.Failed++
			s.Failures = append(s.Failures, Failure{
				Group:  result.Base,
				Path:   outcome.Path,
				Reason: outcome.Reason,
			})
		}
	}
}
