package pipeline

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/couchcryptid/weather-report/internal/domain"
)

// WriterLoader prints report bodies to an io.Writer. Bodies already end in a
// newline, so the extra one from Fprintln leaves a blank line between
// consecutive reports. It implements Loader.
type WriterLoader struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterLoader creates a WriterLoader for w, typically os.Stdout.
func NewWriterLoader(w io.Writer) *WriterLoader {
	return &WriterLoader{w: w}
}

func (l *WriterLoader) Load(ctx context.Context, reports []domain.Report) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, r := range reports {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(l.w, r.Body); err != nil {
			return fmt.Errorf("write %s report: %w", r.Kind, err)
		}
	}
	return nil
}
