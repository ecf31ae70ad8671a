package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xll-gen/bin2h/internal/convert"
)

func TestRunConvert(t *testing.T) {
	out := captureUI(t)
	tempDir := t.TempDir()

	data := make([]byte, 18)
	for i := range data {
		data[i] = byte(i)
	}
	input := writeFile(t, tempDir, "foo.bin", data)
	output := filepath.Join(tempDir, "foo.h")

	if err := runConvert(input, output, "foo", ""); err != nil {
		t.Fatalf("runConvert failed: %v", err)
	}

	header, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read header: %v", err)
	}
	content := string(header)

	expected := []string{
		"/* Auto-generated from foo.bin */",
		"/* File size: 18 bytes */",
		"#ifndef FOO_H",
		"    0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,\n    0x10, 0x11\n};",
		"static const size_t foo_size = sizeof(foo);",
		"#endif // FOO_H",
	}
	for _, s := range expected {
		if !strings.Contains(content, s) {
			t.Errorf("Header missing %q", s)
		}
	}

	summary := out.String()
	for _, s := range []string{input, output, "foo", "18 bytes"} {
		if !strings.Contains(summary, s) {
			t.Errorf("Summary missing %q:\n%s", s, summary)
		}
	}
}

func TestRunConvert_MissingInput(t *testing.T) {
	captureUI(t)
	tempDir := t.TempDir()
	output := filepath.Join(tempDir, "out.h")

	err := runConvert(filepath.Join(tempDir, "missing.opus"), output, "x", "")
	if !errors.Is(err, convert.ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("Output should not exist after a missing input")
	}
}

func TestConvertCommand_Flags(t *testing.T) {
	captureUI(t)
	tempDir := t.TempDir()
	input := writeFile(t, tempDir, "clip.opus", []byte("OggS"))
	output := filepath.Join(tempDir, "clip_opus.h")

	rootCmd.SetArgs([]string{"convert", input, output, "-n", "clip_opus", "-d", "line one\nline two", "--no-color"})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	header, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read header: %v", err)
	}
	content := string(header)
	if !strings.Contains(content, "/*\n * line one\n * line two\n */\n") {
		t.Errorf("Description block missing:\n%s", content)
	}
	if !strings.Contains(content, "static const uint8_t clip_opus[] = {\n    0x4F, 0x67, 0x67, 0x53\n};") {
		t.Errorf("Array body unexpected:\n%s", content)
	}
}

func TestRunConvert_EmptyInputWarns(t *testing.T) {
	out := captureUI(t)
	tempDir := t.TempDir()
	input := writeFile(t, tempDir, "empty.opus", nil)
	output := filepath.Join(tempDir, "empty.h")

	if err := runConvert(input, output, "empty", ""); err != nil {
		t.Fatalf("runConvert failed: %v", err)
	}
	if !strings.Contains(out.String(), "empty[] has no elements") {
		t.Errorf("Expected empty-input warning:\n%s", out.String())
	}
}
