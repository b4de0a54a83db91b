// Copyright 2025 NetApp, Inc. All Rights Reserved.

package capacity

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"

	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/pkg/collection"
)

const (
	OneGiB = uint64(1073741824)
	OneMiB = uint64(1048576)
)

// ToBytes converts a size string to bytes.  Bare letters (k, m, g, ...) and "i" suffixes are binary,
// "b" suffixes (kb, mb, gb, ...) are SI, and a plain number is already bytes.
func ToBytes(s string) (string, error) {
	size := strings.TrimSpace(strings.ToLower(s))
	if size == "" {
		return "", fmt.Errorf("invalid size value '%s'", s)
	}

	number := strings.TrimRightFunc(size, unicode.IsLetter)
	unit := strings.TrimPrefix(size, number)
	number = strings.TrimSpace(number)

	if _, err := strconv.ParseInt(number, 10, 64); err != nil {
		return "", fmt.Errorf("invalid size value '%s': %v", s, err)
	}

	switch unit {
	case "":
		return number, nil
	case "k", "m", "g", "t", "p", "e":
		unit += "ib"
	case "ki", "mi", "gi", "ti", "pi", "ei":
		unit += "b"
	}

	bytes, err := humanize.ParseBytes(number + unit)
	if err != nil {
		return "", fmt.Errorf("invalid size value '%s': %v", s, err)
	}
	return strconv.FormatUint(bytes, 10), nil
}

// sizeHasUnits checks whether a size string includes a units suffix.
func sizeHasUnits(size string) bool {
	size = strings.TrimSpace(size)
	return size != "" && unicode.IsLetter(rune(size[len(size)-1]))
}

// GetVolumeSizeBytes determines the size, in bytes, of a volume from the "size" opt value.  If "size" has a units
// suffix, that is handled here.  If there are no units, the default is GiB.  If size is not in opts, the specified
// default value is parsed identically and used instead.
func GetVolumeSizeBytes(ctx context.Context, opts map[string]string, defaultVolumeSize string) (uint64, error) {
	usingDefaultSize := false
	usingDefaultUnits := false

	size := collection.GetV(opts, "size", "")
	if size == "" {
		size = defaultVolumeSize
		usingDefaultSize = true
	}

	if !sizeHasUnits(size) {
		size += "G"
		usingDefaultUnits = true
	}

	sizeBytesStr, err := ToBytes(size)
	if err != nil {
		return 0, err
	}
	sizeBytes, _ := strconv.ParseUint(sizeBytesStr, 10, 64)

	Logc(ctx).WithFields(LogFields{
		"sizeBytes":         sizeBytes,
		"size":              size,
		"usingDefaultSize":  usingDefaultSize,
		"usingDefaultUnits": usingDefaultUnits,
	}).Debug("Determined volume size.")

	return sizeBytes, nil
}

// BytesToGiB rounds a byte count up to whole GiB, the allocation unit of the array.
func BytesToGiB(bytes uint64) uint64 {
	return (bytes + OneGiB - 1) / OneGiB
}

// GiBToBytes converts whole GiB to bytes.
func GiBToBytes(gib uint64) uint64 {
	return gib * OneGiB
}

// FormatGiB renders a GiB quantity using binary units, e.g. "1.5 TiB".
func FormatGiB(gib float64) string {
	return humanize.IBytes(uint64(gib * float64(OneGiB)))
}
