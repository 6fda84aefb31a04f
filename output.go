package camgen

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrBadOutputName is returned when an output path has no usable stem to
// insert a suffix into.
var ErrBadOutputName = errors.New("invalid output file name")

// AddFileSuffix inserts a suffix between the stem and the extension of an
// output path, eg. ("cam.stl", "_1") becomes "cam_1.stl".
func AddFileSuffix(path, suffix string) (string, error) {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %s", ErrBadOutputName, path)
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		return "", fmt.Errorf("%w: %s", ErrBadOutputName, path)
	}
	return filepath.Join(filepath.Dir(path), stem+suffix+ext), nil
}
