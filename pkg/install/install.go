// Package install is the orchestrator: it validates paths, classifies the
// map source, materializes a canonical staging copy when the source needs
// reshaping, and delegates the merge to the copier. It never scans for
// conflicts itself; interactive callers run the scanner as a separate
// pre-step.
package install

import (
	"path/filepath"

	"github.com/csmaptools/mapinstall/pkg/copier"
	"github.com/csmaptools/mapinstall/pkg/errors"
	"github.com/csmaptools/mapinstall/pkg/filesystem"
	"github.com/csmaptools/mapinstall/pkg/layout"
	"github.com/csmaptools/mapinstall/pkg/lister"
	"github.com/csmaptools/mapinstall/pkg/logging"
	"github.com/csmaptools/mapinstall/pkg/paths"
	"github.com/csmaptools/mapinstall/pkg/types"
	"github.com/rs/zerolog"
)

// Options holds the parameters of one install call.
type Options struct {
	// MapPath is the map source directory.
	MapPath string
	// GamePath is the game installation root (must contain the <game>
	// subdirectory).
	GamePath string
	// Game selects which supported game is targeted.
	Game types.GameType
	// Replace overwrites same-named destination files instead of skipping
	// them.
	Replace bool
	// FileSystem allows injecting a filesystem for testing. Defaults to the
	// OS.
	FileSystem types.FS
	// Events receives diagnostic events. Defaults to a sink that logs them
	// at debug level.
	Events types.Sink
}

// Result reports what an install did.
type Result struct {
	// Layout is the classification of the map source.
	Layout types.MapSourceLayout
	// Staged is true when a temporary canonical copy was materialized.
	Staged bool
	copier.Stats
}

// Install installs the map at opts.MapPath into opts.GamePath. Non-canonical
// sources are reshaped in a temporary staging directory that is removed on
// every exit path, success or failure.
func Install(opts Options) (*Result, error) {
	logger := logging.GetLogger("install")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	sink := opts.Events
	if sink == nil {
		sink = LogSink(logger)
	}

	mapPath, err := paths.Resolve(opts.MapPath)
	if err != nil {
		return nil, err
	}
	gamePath, err := paths.Resolve(opts.GamePath)
	if err != nil {
		return nil, err
	}
	if mapPath == gamePath {
		return nil, errors.Newf(errors.ErrSameDirectory,
			"'%s' and '%s' are the same directory", opts.MapPath, opts.GamePath)
	}

	gameDirs, err := lister.ListDirs(fsys, gamePath)
	if err != nil {
		return nil, err
	}
	if !gameDirs.Contains(opts.Game.Dir()) {
		return nil, errors.Newf(errors.ErrInvalidGameDir,
			"'%s' is not a valid %s installation (directory '%s' not found)",
			gamePath, opts.Game, filepath.Join(gamePath, opts.Game.Dir()))
	}

	lay, err := layout.Classify(fsys, mapPath, opts.Game)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("map", mapPath).
		Str("game_path", gamePath).
		Str("game", opts.Game.String()).
		Str("layout", lay.String()).
		Bool("replace", opts.Replace).
		Msg("Installing map")
	sink.Emit(types.Event{Kind: types.EventClassified, Source: mapPath, Detail: lay.String()})

	result := &Result{Layout: lay}

	switch lay {
	case types.LayoutGameRooted:
		stats, err := copier.MergeCopy(fsys, mapPath, gamePath, opts.Game, opts.Replace, sink)
		if err != nil {
			return nil, err
		}
		result.Stats = *stats

	case types.LayoutMapsRooted:
		result.Staged = true
		err := withStaging(fsys, sink, logger, func(staging string) error {
			if err := copier.CopyTree(fsys, mapPath, filepath.Join(staging, opts.Game.Dir())); err != nil {
				return err
			}
			stats, err := copier.MergeCopy(fsys, staging, gamePath, opts.Game, opts.Replace, sink)
			if err != nil {
				return err
			}
			result.Stats = *stats
			return nil
		})
		if err != nil {
			return nil, err
		}

	case types.LayoutBareMapFiles:
		result.Staged = true
		err := withStaging(fsys, sink, logger, func(staging string) error {
			target := filepath.Join(staging, opts.Game.Dir(), types.MapsDirName)
			if err := copier.CopyTree(fsys, mapPath, target); err != nil {
				return err
			}
			stats, err := copier.MergeCopy(fsys, staging, gamePath, opts.Game, opts.Replace, sink)
			if err != nil {
				return err
			}
			result.Stats = *stats
			return nil
		})
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Newf(errors.ErrInvalidMapDir,
			"'%s' is not a valid map directory", mapPath)
	}

	logger.Info().
		Int("copied", result.FilesCopied).
		Int("skipped", result.FilesSkipped).
		Msg("Install finished")
	return result, nil
}

// withStaging runs fn with a temporary staging directory that is removed on
// every exit path. A removal failure is logged but never masks fn's error.
func withStaging(fsys types.FS, sink types.Sink, logger zerolog.Logger, fn func(staging string) error) error {
	staging, err := fsys.TempDir("", "mapinstall-")
	if err != nil {
		return errors.Wrap(err, errors.ErrStaging, "failed to create staging directory")
	}
	logger.Debug().Str("staging", staging).Msg("Created staging directory")
	sink.Emit(types.Event{Kind: types.EventStagingCreated, Dest: staging})

	defer func() {
		if rmErr := fsys.RemoveAll(staging); rmErr != nil {
			logger.Warn().Err(rmErr).Str("staging", staging).Msg("Failed to remove staging directory")
			return
		}
		logger.Debug().Str("staging", staging).Msg("Removed staging directory")
		sink.Emit(types.Event{Kind: types.EventStagingRemoved, Dest: staging})
	}()

	return fn(staging)
}

// LogSink returns a Sink that records events on logger at debug level. It is
// the default when callers inject nothing.
func LogSink(logger zerolog.Logger) types.Sink {
	return func(e types.Event) {
		logger.Debug().
			Str("kind", string(e.Kind)).
			Str("source", e.Source).
			Str("dest", e.Dest).
			Str("detail", e.Detail).
			Msg("Install event")
	}
}
