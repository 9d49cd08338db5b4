package main

import (
	"bytes"
	"testing"
	"time"

	"imagetriage/internal/triage"
)

func TestRenderSummaryCounts(t *testing.T) {
	summary := &triage.Summary{
		RunID:      "0123456789abcdef",
		Mode:       triage.ModeProcess,
		Folder:     "/photos/shoot",
		Duration:   1500 * time.Millisecond,
		Groups:     4,
		Moved:      5,
		Skipped:    1,
		Failed:     1,
		NoSidecar:  1,
		NoMetadata: 2,
		Distribution: map[string]int{
			"5_star": 2,
		},
		Failures: []triage.Failure{
			{Group: "IMG_003", Path: "/photos/shoot/IMG_003.xmp", Reason: "destination exists"},
		},
	}

	var buf bytes.Buffer
	renderSummary(&buf, summary)
	out := buf.String()

	requireContains(t, out, "Process run 01234567 on /photos/shoot")
	requireContains(t, out, "Moved:   5")
	requireContains(t, out, "Without sidecar: 1")
	requireContains(t, out, "Without metadata: 2")
	requireContains(t, out, "5_star")
	requireContains(t, out, "IMG_003.xmp (destination exists)")
}

func TestRenderSummaryOmitsZeroDetailLines(t *testing.T) {
	summary := &triage.Summary{
		RunID:  "0123456789abcdef",
		Mode:   triage.ModeGather,
		Folder: "/photos/shoot",
	}

	var buf bytes.Buffer
	renderSummary(&buf, summary)
	out := buf.String()

	if bytes.Contains(buf.Bytes(), []byte("Without metadata")) {
		t.Fatalf("zero count must not be rendered:\n%s", out)
	}
	if bytes.Contains(buf.Bytes(), []byte("Without sidecar")) {
		t.Fatalf("zero count must not be rendered:\n%s", out)
	}
}
