// Package convert wraps the encoder with the file handling of the bin2h CLI.
package convert

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/xll-gen/bin2h/internal/encoder"
)

// DefaultArrayName is the array name the CLI uses when none is given.
const DefaultArrayName = "test_opus_data"

var (
	// ErrMissingInput is returned when the input path does not exist.
	ErrMissingInput = errors.New("input file not found")
	// ErrIO is returned when reading the input or writing the output fails.
	ErrIO = errors.New("i/o failure")
)

// Options configures a single conversion.
type Options struct {
	// Input is the path of the binary asset.
	Input string
	// Output is the path of the header to write.
	Output string
	// ArrayName names the emitted array. It is emitted as given, even when empty.
	ArrayName string
	// Description is rendered as a comment block when non-empty.
	Description string
}

// Result summarizes a completed conversion.
type Result struct {
	Input     string
	Output    string
	ArrayName string
	// Size is the number of bytes embedded.
	Size int
	// Digest is the hex BLAKE3-256 digest of the input.
	Digest string
}

// File converts opts.Input into a header at opts.Output.
// If the input does not exist no output file is created.
func File(opts Options) (*Result, error) {
	if _, err := os.Stat(opts.Input); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, opts.Input)
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	name := opts.ArrayName
	req := encoder.Request{
		SourceName:  filepath.Base(opts.Input),
		GuardBasis:  filepath.Base(opts.Output),
		ArrayName:   name,
		Description: opts.Description,
	}
	slog.Debug("encoding asset", "input", opts.Input, "output", opts.Output, "array", name, "size", len(data))

	if err := writeFile(opts.Output, encoder.Encode(data, req)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return &Result{
		Input:     opts.Input,
		Output:    opts.Output,
		ArrayName: name,
		Size:      len(data),
		Digest:    Digest(data),
	}, nil
}

// Digest returns the hex BLAKE3-256 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func writeFile(path, content string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.WriteString(f, content)
	return err
}
