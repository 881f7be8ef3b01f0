// Command seqtool sorts, merges, deduplicates, chunks and reverses lines of
// text. Run it without arguments on a terminal to pick an operation.
package main

import (
	"context"
	"os"

	"github.com/amp-labs/amp-containers/cli"
	"github.com/amp-labs/amp-containers/logger"
	"github.com/amp-labs/amp-containers/shutdown"
)

func main() {
	ctx, handler := shutdown.SetupHandler(context.Background())

	logger.ConfigureLogging(ctx, "seqtool")

	handler.BeforeShutdown(func() {
		logger.Get(ctx).Warn("interrupted, output is incomplete")
	})

	code := cli.Main(ctx, os.Args[1:], cli.StdStreams())

	handler.Stop()
	os.Exit(code)
}
