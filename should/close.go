// Package should runs cleanup that is expected to succeed and only logs when
// it does not, which keeps defer statements short.
package should

import (
	"context"
	"io"

	"github.com/amp-labs/amp-containers/logger"
)

// Close closes closer and logs msg with the error if closing fails.
//
//	defer should.Close(ctx, file, "closing input")
func Close(ctx context.Context, closer io.Closer, msg string) {
	if err := closer.Close(); err != nil {
		logger.Get(ctx).Error(msg, "error", err)
	}
}

// CloseAll closes every closer in reverse order, logging each failure.
func CloseAll(ctx context.Context, closers []io.Closer, msg string) {
	for i := len(closers) - 1; i >= 0; i-- {
		Close(ctx, closers[i], msg)
	}
}
