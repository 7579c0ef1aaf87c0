// Package vttio moves WebVTT text between files, standard streams and the
// codec. It hides transport details the grammar does not deal with:
// compression, byte order marks, UTF-16 input and line endings.
package vttio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/ulikunitz/xz"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/mgpai22/webvtt/webvtt"
)

// Stdio is the path that selects stdin or stdout.
const Stdio = "-"

const xzExt = ".xz"

// Replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// IsStdio reports whether path names a standard stream.
func IsStdio(path string) bool {
	return path == "" || path == Stdio
}

// Read returns the decoded text at path. Paths ending in .xz are
// decompressed first.
func Read(path string) (string, error) {
	if IsStdio(path) {
		return ReadFrom(stdin, false)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	text, err := ReadFrom(file, strings.HasSuffix(path, xzExt))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return text, nil
}

// ReadFrom reads all of r, optionally through an xz decompressor, and
// decodes the result.
func ReadFrom(r io.Reader, compressed bool) (string, error) {
	if compressed {
		xzReader, err := xz.NewReader(r)
		if err != nil {
			return "", fmt.Errorf("failed to create xz reader: %w", err)
		}
		r = xzReader
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return Decode(data)
}

// Decode converts raw file bytes to UTF-8 text with "\n" line endings. A
// UTF-8 byte order mark is dropped; a UTF-16 one selects UTF-16 decoding.
func Decode(data []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode text: %w", err)
	}
	text := strings.ReplaceAll(string(decoded), "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n"), nil
}

// ReadDocument reads and parses the WebVTT file at path.
func ReadDocument(path string) (*webvtt.Document, error) {
	text, err := Read(path)
	if err != nil {
		return nil, err
	}
	return webvtt.Parse(text)
}

// Write stores data at path. Files are replaced atomically while holding
// an advisory lock on path+".lock", so concurrent writers never interleave.
// Paths ending in .xz are compressed.
func Write(path string, data []byte) error {
	if IsStdio(path) {
		_, err := stdout.Write(data)
		return err
	}

	if strings.HasSuffix(path, xzExt) {
		compressed, err := compress(data)
		if err != nil {
			return err
		}
		data = compressed
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock %s: %w", path, err)
	}
	defer lock.Unlock() //nolint:errcheck

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create xz writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("failed to compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress: %w", err)
	}
	return buf.Bytes(), nil
}
