package sink

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/msgfeatures/internal/ctxlog"
	"github.com/vk/msgfeatures/internal/fsutil"
)

// File writes to a local path, creating parent directories as needed.
type File struct {
	Path string
}

// Put implements Target.
func (f *File) Put(ctx context.Context, data []byte) error {
	if err := fsutil.EnsureParentDir(f.Path); err != nil {
		return err
	}
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file '%s': %w", f.Path, err)
	}
	ctxlog.FromContext(ctx).Info("Wrote output file.", "path", f.Path, "size", len(data))
	return nil
}

func (f *File) String() string {
	return f.Path
}
