package convert

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/xll-gen/bin2h/internal/encoder"
)

// ErrMismatch is returned by Verify when the header does not reproduce the source bytes.
var ErrMismatch = errors.New("header does not match source")

// VerifyResult reports the outcome of a round-trip check.
type VerifyResult struct {
	// Size is the number of bytes decoded from the header.
	Size         int
	SourceDigest string
	HeaderDigest string
	Match        bool
}

// Verify decodes arrayName from the header at headerPath and compares it with
// the contents of sourcePath. On mismatch the result is returned together with ErrMismatch.
func Verify(headerPath, sourcePath, arrayName string) (*VerifyResult, error) {
	src, err := os.ReadFile(sourcePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, sourcePath)
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	doc, err := os.ReadFile(headerPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, headerPath)
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	decoded, err := encoder.Decode(string(doc), arrayName)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", headerPath, err)
	}

	res := &VerifyResult{
		Size:         len(decoded),
		SourceDigest: Digest(src),
		HeaderDigest: Digest(decoded),
	}
	res.Match = res.SourceDigest == res.HeaderDigest && len(src) == len(decoded)
	slog.Debug("verified header", "header", headerPath, "source", sourcePath, "match", res.Match)

	if !res.Match {
		return res, fmt.Errorf("%w: source %s (%d bytes), header %s (%d bytes)",
			ErrMismatch, res.SourceDigest, len(src), res.HeaderDigest, len(decoded))
	}
	return res, nil
}
