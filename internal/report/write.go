// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package report

import (
	"context"
	"fmt"
	"io"

	xglog "github.com/ManuGH/parkload/internal/log"
	"github.com/google/renameio/v2"
)

// WriteFile renders reports into path. The previous file stays intact until
// the new content is fully written and synced.
func WriteFile(ctx context.Context, path string, render Renderer, reports []Report) error {
	logger := xglog.FromContext(ctx)

	// renameio handles: temp file creation, fsync, atomic rename, cleanup on error
	pendingFile, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending report file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending report file")
		}
	}()

	if err := render(pendingFile, reports); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace report file: %w", err)
	}
	return nil
}

// Write renders reports to path, or to stdout when path is empty.
func Write(ctx context.Context, stdout io.Writer, path string, render Renderer, reports []Report) error {
	if path == "" {
		return render(stdout, reports)
	}
	return WriteFile(ctx, path, render, reports)
}
