package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	amperrors "github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/logger"
	"github.com/google/uuid"
)

const usage = `usage: seqtool <sort|merge|dedup|chunk|reverse|unique> [files...]

Lines are read from the files, or stdin when none are given. Run without
arguments on a terminal to pick the operation and files interactively. Files
ending in .gz, .zst, .sz, .lz4 or .br are decompressed.

Environment:
  SEQTOOL_ORDER        lexical (default), natural or numeric
  SEQTOOL_REVERSE      sort descending
  SEQTOOL_MERGE_EQUAL  merge: keep one of two equal heads
  SEQTOOL_NORMALIZE    normalize lines to Unicode NFC (default true)
  SEQTOOL_CHUNK_SIZE   chunk: lines per chunk (default 100)
  SEQTOOL_HASH         unique: xxh3 (default) or xxhash64
  SEQTOOL_PARALLEL_THRESHOLD
                       sort: inputs larger than this are sorted in parallel
  SEQTOOL_CONFIG       .env, .json or .yaml file with defaults for the above
`

// Streams are the process's standard streams.
type Streams struct {
	In          io.Reader
	Out         io.Writer
	Err         io.Writer
	Interactive bool

	// Prompter is used when Interactive is set and no operation was given.
	// Nil means TerminalPrompter.
	Prompter Prompter
}

// StdStreams returns the process streams. Interactive is set when stdin is
// a terminal.
func StdStreams() Streams {
	interactive := false
	if info, err := os.Stdin.Stat(); err == nil {
		interactive = info.Mode()&os.ModeCharDevice != 0
	}

	return Streams{
		In:          os.Stdin,
		Out:         os.Stdout,
		Err:         os.Stderr,
		Interactive: interactive,
		Prompter:    TerminalPrompter{},
	}
}

// Main runs seqtool with args (without the program name) and returns the
// process exit code.
func Main(ctx context.Context, args []string, streams Streams) int {
	ctx = logger.WithRunId(ctx, uuid.NewString())

	if err := execute(ctx, args, streams); err != nil {
		logger.Get(ctx).Error("seqtool failed", "error", err)

		if errors.Is(err, amperrors.ErrInvalidArgument) {
			_, _ = fmt.Fprint(streams.Err, usage)

			return 2
		}

		return 1
	}

	return 0
}

func execute(ctx context.Context, args []string, streams Streams) error {
	ctx, cfg, err := LoadConfig(ctx)
	if err != nil {
		return err
	}

	op, files, err := operation(args, streams)
	if err != nil {
		return err
	}

	ctx = logger.With(ctx, "op", op)
	logger.Get(ctx).Debug("starting", "files", files, "order", cfg.Order)

	inputs, err := ReadInputs(ctx, files, streams.In, cfg.Normalize)
	if err != nil {
		return err
	}

	return Run(ctx, cfg, op, inputs, streams.Out)
}

func operation(args []string, streams Streams) (string, []string, error) {
	if len(args) == 0 {
		if !streams.Interactive {
			return "", nil, fmt.Errorf("%w: no operation given", amperrors.ErrInvalidArgument)
		}

		prompter := streams.Prompter
		if prompter == nil {
			prompter = TerminalPrompter{}
		}

		op, err := prompter.Operation()
		if err != nil {
			return "", nil, err
		}

		if !ValidOperation(op) {
			return "", nil, fmt.Errorf("%w: unknown operation %q", amperrors.ErrInvalidArgument, op)
		}

		// With no files the lines are typed on the terminal until EOF.
		files, err := prompter.Files()
		if err != nil {
			return "", nil, err
		}

		return op, files, nil
	}

	if !ValidOperation(args[0]) {
		return "", nil, fmt.Errorf("%w: unknown operation %q", amperrors.ErrInvalidArgument, args[0])
	}

	return args[0], args[1:], nil
}
