// Package triage drives whole-folder runs: enumerate file groups, read
// sidecar metadata, resolve destination folders, and delegate the moves.
// Groups are processed strictly one at a time in base-name order; one
// group's failure never stops the run.
package triage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"imagetriage/internal/classify"
	"imagetriage/internal/config"
	"imagetriage/internal/logging"
	"imagetriage/internal/mover"
	"imagetriage/internal/preflight"
	"imagetriage/internal/runlog"
	"imagetriage/internal/scan"
	"imagetriage/internal/sidecar"
)

// lockFileName is created inside the target folder for the duration of a
// run. Its extension is never in the primary set, so enumeration skips it.
const lockFileName = ".imagetriage.lock"

// ErrLocked reports that another run holds the target folder.
var ErrLocked = errors.New("target folder is locked by another imagetriage run")

// Runner executes triage runs against one configuration snapshot. The
// history store is optional; recording failures never fail a run.
type Runner struct {
	cfg     *config.Config
	history *runlog.Store
	logger  *slog.Logger
}

// NewRunner constructs a runner. history may be nil to disable run
// recording; a nil logger discards output.
func NewRunner(cfg *config.Config, history *runlog.Store, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		cfg:     cfg,
		history: history,
		logger:  logger.With(logging.String("component", "triage")),
	}
}

// Process sorts every file group directly in dir into metadata-derived
// subfolders. Returns a run-level error only when the folder itself is
// unusable; per-file problems land in the summary.
func (r *Runner) Process(ctx context.Context, dir string) (*Summary, error) {
	dir, err := config.ExpandPath(dir)
	if err != nil {
		return nil, err
	}
	if err := preflight.CheckTarget(dir); err != nil {
		return nil, err
	}

	unlock, err := r.acquireLock(dir)
	if err != nil {
		return nil, err
	}
	defer unlock()

	groups, err := scan.Groups(dir, r.cfg.ExtensionSet(), r.cfg.SidecarExt())
	if err != nil {
		return nil, err
	}

	summary := newSummary(ModeProcess, uuid.NewString(), dir)
	summary.Groups = len(groups)
	r.logger.Info("starting process run",
		logging.String("run_id", summary.RunID),
		logging.String("folder", dir),
		logging.Int("groups", len(groups)))

	for _, group := range groups {
		if ctx.Err() != nil {
			summary.Cancelled = true
			r.logger.Warn("run cancelled", logging.String("run_id", summary.RunID))
			break
		}
		r.processGroup(group, dir, summary)
	}

	r.finish(ctx, summary)
	return summary, nil
}

func (r *Runner) processGroup(group scan.Group, dir string, summary *Summary) {
	key := r.readKey(group)

	if !key.HasMetadata() {
		if group.Sidecar == "" {
			summary.NoSidecar++
		} else {
			summary.NoMetadata++
		}
		if r.cfg.Triage.KeepUnratedInPlace {
			summary.LeftInPlace += len(group.Files())
			summary.Skipped += len(group.Files())
			r.logger.Debug("leaving unrated group in place", logging.String("base", group.Base))
			return
		}
	}

	folder := classify.Folder(key)
	result := mover.MoveFiles(group.Base, group.Files(), filepath.Join(dir, folder))
	summary.absorb(result, folder)

	if failed := result.Failed(); failed > 0 {
		r.logger.Warn("group moved with failures",
			logging.String("base", group.Base),
			logging.String("destination", folder),
			logging.Int("failed", failed))
	} else {
		r.logger.Debug("group moved",
			logging.String("base", group.Base),
			logging.String("destination", folder))
	}
}

// readKey resolves the classification key for one group: the sidecar when
// present, otherwise the embedded fallback when enabled. Both degrade to
// the zero key instead of erroring.
func (r *Runner) readKey(group scan.Group) sidecar.Key {
	if group.Sidecar != "" {
		return sidecar.Read(group.Sidecar)
	}
	if r.cfg.Files.EmbeddedFallback {
		for _, path := range group.Primary {
			if key := sidecar.ReadEmbedded(path); key.HasMetadata() {
				return key
			}
		}
	}
	return sidecar.Key{}
}

// Gather returns files from engine-created subfolders of dir back to dir
// itself and removes the subfolders it emptied. Subfolders whose names the
// classifier could not have produced are left alone.
func (r *Runner) Gather(ctx context.Context, dir string) (*Summary, error) {
	dir, err := config.ExpandPath(dir)
	if err != nil {
		return nil, err
	}
	if err := preflight.CheckTarget(dir); err != nil {
		return nil, err
	}

	unlock, err := r.acquireLock(dir)
	if err != nil {
		return nil, err
	}
	defer unlock()

	folders, err := scan.Subfolders(dir, classify.Recognized)
	if err != nil {
		return nil, err
	}

	summary := newSummary(ModeGather, uuid.NewString(), dir)
	summary.Groups = len(folders)
	r.logger.Info("starting gather run",
		logging.String("run_id", summary.RunID),
		logging.String("folder", dir),
		logging.Int("subfolders", len(folders)))

	for _, folder := range folders {
		if ctx.Err() != nil {
			summary.Cancelled = true
			r.logger.Warn("run cancelled", logging.String("run_id", summary.RunID))
			break
		}

		result := mover.MoveFiles(folder.Name, folder.Files, dir)
		summary.absorb(result, "")

		if removed := r.removeIfEmpty(folder.Path); removed {
			summary.RemovedFolders++
		}
	}

	r.finish(ctx, summary)
	return summary, nil
}

func (r *Runner) removeIfEmpty(path string) bool {
	entries, err := os.ReadDir(path)
	if err != nil || len(entries) != 0 {
		return false
	}
	if err := os.Remove(path); err != nil {
		r.logger.Warn("failed to remove emptied folder", logging.String("path", path), logging.Error(err))
		return false
	}
	return true
}

func (r *Runner) acquireLock(dir string) (func(), error) {
	lockPath := filepath.Join(dir, lockFileName)
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", lockPath, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, dir)
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			r.logger.Warn("failed to release run lock", logging.Error(err))
			return
		}
		_ = os.Remove(lockPath)
	}, nil
}

func (r *Runner) finish(ctx context.Context, summary *Summary) {
	summary.Duration = time.Since(summary.StartedAt).Round(time.Millisecond)
	r.logger.Info("run complete",
		logging.String("run_id", summary.RunID),
		logging.Int("moved", summary.Moved),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
		logging.Duration("duration", summary.Duration))

	if r.history == nil {
		return
	}
	run := runlog.Run{
		ID:          summary.RunID,
		Mode:        string(summary.Mode),
		Folder:      summary.Folder,
		StartedAt:   summary.StartedAt,
		Duration:    summary.Duration,
		Moved:       summary.Moved,
		Skipped:     summary.Skipped,
		Failed:      summary.Failed,
		LeftInPlace: summary.LeftInPlace,
	}
	// Recording must survive a cancelled run.
	if err := r.history.Record(context.WithoutCancel(ctx), run); err != nil {
		r.logger.Warn("failed to record run history", logging.Error(err))
	}
}
