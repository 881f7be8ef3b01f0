package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/logger"
	"github.com/amp-labs/amp-containers/should"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"
)

// Decompress wraps r with a decoder chosen by the file name's extension:
// .gz, .zst, .sz (framed snappy), .lz4 or .br. Other names are read as is.
func Decompress(name string, r io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}

		return zr, nil
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}

		return dec.IOReadCloser(), nil
	case ".sz":
		return io.NopCloser(snappy.NewReader(r)), nil
	case ".lz4":
		return io.NopCloser(lz4.NewReader(r)), nil
	case ".br":
		return io.NopCloser(brotli.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// ToUTF8 converts data to UTF-8. Valid UTF-8 is returned unchanged; anything
// else goes through charset detection, and if that fails the data is returned
// as is.
func ToUTF8(data []byte) ([]byte, string) {
	if utf8.Valid(data) {
		return data, "UTF-8"
	}

	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return data, "UTF-8"
	}

	decoded, err := charset.NewReaderLabel(best.Charset, bytes.NewReader(data))
	if err != nil {
		return data, "UTF-8"
	}

	out, err := io.ReadAll(decoded)
	if err != nil || !utf8.Valid(out) {
		return data, "UTF-8"
	}

	return out, best.Charset
}

// SplitLines splits text into lines, accepting both \n and \r\n endings. A
// trailing newline does not produce an empty last line. With normalize set
// every line is brought to Unicode NFC.
func SplitLines(text []byte, normalize bool) []string {
	var lines []string

	scanner := bufio.NewScanner(bytes.NewReader(text))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), len(text)+1)

	for scanner.Scan() {
		line := scanner.Text()
		if normalize {
			line = norm.NFC.String(line)
		}

		lines = append(lines, line)
	}

	return lines
}

// ReadLines reads one input fully: decompression, transcoding to UTF-8 and
// line splitting.
func ReadLines(ctx context.Context, name string, r io.Reader, normalize bool) ([]string, error) {
	rc, err := Decompress(name, r)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}

	defer should.Close(ctx, rc, "closing decompressor")

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	text, detected := ToUTF8(data)
	if detected != "UTF-8" {
		logger.Get(ctx).Debug("transcoded input", "input", name, "charset", detected)
	}

	return SplitLines(text, normalize), nil
}

// ReadInputs reads every named file, or stdin when names is empty. All files
// are attempted and their errors reported together.
func ReadInputs(ctx context.Context, names []string, stdin io.Reader, normalize bool) ([][]string, error) {
	if len(names) == 0 {
		lines, err := ReadLines(ctx, "-", stdin, normalize)
		if err != nil {
			return nil, err
		}

		return [][]string{lines}, nil
	}

	var errs errors.Collection

	inputs := make([][]string, 0, len(names))

	for _, name := range names {
		lines, err := readFile(ctx, name, normalize)
		if err != nil {
			errs.Add(err)

			continue
		}

		inputs = append(inputs, lines)
	}

	if errs.HasError() {
		return nil, errs.GetError()
	}

	return inputs, nil
}

func readFile(ctx context.Context, name string, normalize bool) ([]string, error) {
	f, err := os.Open(name) // #nosec G304 -- reading user-named inputs is the point
	if err != nil {
		return nil, err
	}

	defer should.Close(ctx, f, "closing input file")

	return ReadLines(ctx, name, f, normalize)
}
