// Package size converts the byte-size strings printed by the gluster CLI
// ("100.0MB", "819Bytes") into byte counts.
package size

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Size represents unit to measure information size
type Size uint64

// Byte represents one byte of information
const Byte Size = 1

// gluster prints binary multiples with decimal names, so KB is 2^10 here.
const (
	// KB is 1024 bytes
	KB = 1024 * Byte
	// MB is 1024 KB
	MB = 1024 * KB
	// GB is 1024 MB
	GB = 1024 * MB
	// TB is 1024 GB
	TB = 1024 * GB
	// PB is 1024 TB
	PB = 1024 * TB
)

// ErrInvalidSize is returned for strings without a recognized unit suffix or
// with an unusable numeric part.
var ErrInvalidSize = errors.New("invalid size format")

// suffixes are ordered longest first so that "MB" is never taken for a
// shorter unit.
var suffixes = []struct {
	name string
	unit Size
}{
	{"BYTES", Byte},
	{"KB", KB},
	{"MB", MB},
	{"GB", GB},
	{"TB", TB},
	{"PB", PB},
}

// ParseBytes converts a size string such as "8.2KB" into a number of bytes.
// The suffix is matched case-insensitively and must directly follow the
// number; surrounding blanks are ignored.
func ParseBytes(s string) (float64, error) {
	str := strings.TrimSpace(s)
	upper := strings.ToUpper(str)

	for _, suffix := range suffixes {
		if !strings.HasSuffix(upper, suffix.name) {
			continue
		}
		num := strings.TrimSpace(str[:len(str)-len(suffix.name)])
		if num == "" {
			return 0, fmt.Errorf("%w: %q has no numeric part", ErrInvalidSize, s)
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
		}
		if v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, fmt.Errorf("%w: %q is not a non-negative number", ErrInvalidSize, s)
		}
		return v * float64(suffix.unit), nil
	}

	return 0, fmt.Errorf("%w: %q has no unit suffix", ErrInvalidSize, s)
}

// Parse is ParseBytes rounded to a whole number of bytes.
func Parse(s string) (Size, error) {
	v, err := ParseBytes(s)
	if err != nil {
		return 0, err
	}
	if v = math.Round(v); v >= math.MaxUint64 {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidSize, s)
	}
	return Size(v), nil
}

// Bytes returns number of bytes
func (s Size) Bytes() uint64 { return uint64(s) }

// String renders s the way the gluster CLI does, e.g. "1.0KB" or "512Bytes".
func (s Size) String() string {
	switch {
	case s >= PB:
		return fmt.Sprintf("%.1fPB", float64(s)/float64(PB))
	case s >= TB:
		return fmt.Sprintf("%.1fTB", float64(s)/float64(TB))
	case s >= GB:
		return fmt.Sprintf("%.1fGB", float64(s)/float64(GB))
	case s >= MB:
		return fmt.Sprintf("%.1fMB", float64(s)/float64(MB))
	case s >= KB:
		return fmt.Sprintf("%.1fKB", float64(s)/float64(KB))
	}
	return fmt.Sprintf("%dBytes", uint64(s))
}
