package encoder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrArrayNotFound is returned when the document has no declaration for the requested array.
	ErrArrayNotFound = errors.New("array declaration not found")
	// ErrUnterminatedArray is returned when the array literal has no closing "};".
	ErrUnterminatedArray = errors.New("array literal is not terminated")
)

// Decode extracts the bytes of the array named arrayName from a header
// document produced by Encode. The declaration must occupy a whole line,
// so mentions of the array inside comments are skipped.
func Decode(doc string, arrayName string) ([]byte, error) {
	decl := "static const uint8_t " + arrayName + "[] = {\n"
	start := 0
	if !strings.HasPrefix(doc, decl) {
		i := strings.Index(doc, "\n"+decl)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrArrayNotFound, arrayName)
		}
		start = i + 1
	}
	body := doc[start+len(decl):]

	end := strings.Index(body, "};")
	if end < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnterminatedArray, arrayName)
	}
	body = body[:end]

	out := make([]byte, 0, len(body)/6)
	for _, field := range strings.Split(body, ",") {
		lit := strings.TrimSpace(field)
		if lit == "" {
			continue
		}
		if len(lit) < 3 || (lit[:2] != "0x" && lit[:2] != "0X") {
			return nil, fmt.Errorf("invalid byte literal %q in %s", lit, arrayName)
		}
		v, err := strconv.ParseUint(lit[2:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid byte literal %q in %s: %w", lit, arrayName, err)
		}
		out = append(out, byte(v))
	}
	return out, nil
}
