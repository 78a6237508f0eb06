package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grindlemire/go-ui/internal/debug"
	"github.com/grindlemire/go-ui/internal/uib"
	"github.com/grindlemire/go-ui/internal/uigen"
)

// Source parse errors, matched with errors.Is.
var (
	ErrIO                 = uigen.ErrIO
	ErrLex                = uigen.ErrLex
	ErrUnexpectedToken    = uigen.ErrUnexpectedToken
	ErrUnexpectedEOF      = uigen.ErrUnexpectedEOF
	ErrUnknownComponent   = uigen.ErrUnknownComponent
	ErrDuplicateElementID = uigen.ErrDuplicateElementID
)

// Binary decode errors, matched with errors.Is.
var (
	ErrBadMagic         = uib.ErrBadMagic
	ErrTruncatedPayload = uib.ErrTruncatedPayload
	ErrDecodeFailure    = uib.ErrDecodeFailure
	ErrMalformedTree    = uib.ErrMalformedTree
)

// BinaryExt is the file extension of compiled trees.
const BinaryExt = ".uib"

// Parse parses .ui source text. filename is only used in error positions.
func Parse(filename, source string) (*Tree, error) {
	return uigen.Parse(filename, source)
}

// Format renders t as canonical .ui source.
func Format(t *Tree) string {
	return uigen.Print(t)
}

// LoadSource reads and parses a .ui file.
func LoadSource(path string) (*Tree, error) {
	t, err := uigen.ParseFile(path)
	if err != nil {
		debug.Log("load: parse %s failed: %v", path, err)
		return nil, err
	}
	debug.Log("load: parsed %s (%d nodes)", path, t.Len())
	return t, nil
}

// EncodeBinary returns the .uib encoding of t.
func EncodeBinary(t *Tree) ([]byte, error) {
	return uib.Encode(t)
}

// DecodeBinary decodes a .uib file image.
func DecodeBinary(data []byte) (*Tree, error) {
	return uib.Decode(data)
}

// SaveBinary writes t to path in the .uib format.
func SaveBinary(path string, t *Tree) error {
	data, err := uib.Encode(t)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	debug.Log("load: wrote %s (%d bytes)", path, len(data))
	return nil
}

// LoadBinary reads a .uib file.
func LoadBinary(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	t, err := uib.Read(f)
	if err != nil {
		debug.Log("load: decode %s failed: %v", path, err)
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	debug.Log("load: decoded %s (%d nodes)", path, t.Len())
	return t, nil
}

// Compile parses sourcePath and writes the binary form to outputPath.
func Compile(sourcePath, outputPath string) error {
	t, err := LoadSource(sourcePath)
	if err != nil {
		return err
	}
	return SaveBinary(outputPath, t)
}

// Load reads either format, choosing by extension: .uib files are decoded,
// anything else is parsed as source.
func Load(path string) (*Tree, error) {
	if strings.EqualFold(filepath.Ext(path), BinaryExt) {
		return LoadBinary(path)
	}
	return LoadSource(path)
}

// BinaryPath returns sourcePath with its extension replaced by .uib.
func BinaryPath(sourcePath string) string {
	return strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + BinaryExt
}
