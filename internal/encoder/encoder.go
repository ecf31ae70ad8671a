// Package encoder renders binary assets as C header files holding a static
// uint8_t array and a matching size constant.
package encoder

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/xll-gen/bin2h/internal/templates"
)

// BytesPerLine is the number of array values emitted on each data line.
const BytesPerLine = 16

// indent prefixes every data line of the array body.
const indent = "    "

var headerTmpl = template.Must(template.New("header.h.tmpl").Parse(templates.MustGet("header.h.tmpl")))

// Request describes how a raw asset should be rendered.
type Request struct {
	// SourceName appears in the provenance comment only.
	SourceName string
	// GuardBasis is the string the include guard is derived from,
	// conventionally the output file's base name.
	GuardBasis string
	// ArrayName names the array and its companion <ArrayName>_size constant.
	// It is emitted as given and is not checked to be a valid C identifier.
	ArrayName string
	// Description is rendered as a comment block when non-empty.
	Description string
}

// headerData is the view passed to header.h.tmpl.
type headerData struct {
	SourceName string
	Size       int
	Comment    []string
	Guard      string
	ArrayName  string
	Lines      []string
}

// Encode renders data as a header document according to req.
// The result depends only on its arguments.
func Encode(data []byte, req Request) string {
	hd := headerData{
		SourceName: req.SourceName,
		Size:       len(data),
		Comment:    commentLines(req.Description),
		Guard:      GuardToken(req.GuardBasis),
		ArrayName:  req.ArrayName,
		Lines:      DataLines(data),
	}

	var sb strings.Builder
	sb.Grow(len(data)*6 + 512)
	if err := headerTmpl.Execute(&sb, hd); err != nil {
		// Only reachable if header.h.tmpl references a field headerData lacks.
		panic(fmt.Sprintf("encoder: executing header template: %v", err))
	}
	return sb.String()
}

// GuardToken derives an include-guard identifier from basis by upper-casing
// it and replacing every '.' with '_'.
func GuardToken(basis string) string {
	return strings.ReplaceAll(strings.ToUpper(basis), ".", "_")
}

// DataLines formats data as the body lines of the array literal.
// Each line holds up to BytesPerLine values; all lines but the last end in a comma.
// Empty data yields no lines.
func DataLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}

	lines := make([]string, 0, (len(data)+BytesPerLine-1)/BytesPerLine)
	var sb strings.Builder
	for i := 0; i < len(data); i += BytesPerLine {
		end := min(i+BytesPerLine, len(data))

		sb.Reset()
		sb.WriteString(indent)
		for j, b := range data[i:end] {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "0x%02X", b)
		}
		if end < len(data) {
			sb.WriteByte(',')
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// commentLines splits a description into comment lines.
// A nil result means no comment block is emitted.
func commentLines(description string) []string {
	if description == "" {
		return nil
	}
	return strings.Split(strings.TrimSpace(description), "\n")
}
