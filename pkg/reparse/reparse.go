// Package reparse builds the mount-point reparse data buffer that turns
// an empty directory into a junction. The encoding is pure byte layout
// with no filesystem dependency, so it is unit-testable on any platform.
//
// Buffer layout, all fields little-endian:
//
//	[0..4)       reparse tag (IO_REPARSE_TAG_MOUNT_POINT)
//	[4..6)       reparse data length: bytes following the 8-byte header
//	[6..8)       reserved, zero
//	[8..10)      substitute-name offset, zero
//	[10..12)     substitute-name length in bytes
//	[12..12+2n)  UTF-16LE target path, terminator excluded
//	remainder    zero padding covered by the declared data length
//
// See https://msdn.microsoft.com/en-us/library/cc232007.aspx for the
// REPARSE_DATA_BUFFER structure this follows.
package reparse

import (
	"encoding/binary"
	"strings"
	"unicode/utf16"

	"github.com/arthur-debert/mklnk/pkg/errors"
)

const (
	// IOReparseTagMountPoint is the reparse tag for directory junctions,
	// as distinct from symbolic links.
	IOReparseTagMountPoint uint32 = 0xA0000003

	// FSCTLSetReparsePoint is the device-control code that installs a
	// reparse buffer on an open directory handle.
	FSCTLSetReparsePoint uint32 = 0x900A4

	// headerSize is the common REPARSE_DATA_BUFFER header: tag, data
	// length, reserved.
	headerSize = 8

	// mountPointHeaderSize is the fixed portion of the mount-point
	// payload counted by the declared data length.
	mountPointHeaderSize = 8

	// trailerSize is the slack after the substitute name reserved for
	// the wide null terminator.
	trailerSize = 4

	// maxTargetUnits is the largest target length, in UTF-16 code
	// units, whose declared data length still fits the 16-bit field.
	// Longer targets must be rejected up front; truncating would emit a
	// buffer the filesystem driver rejects.
	maxTargetUnits = (65535 - mountPointHeaderSize - trailerSize) / 2
)

// EncodeMountPoint builds the reparse buffer for a junction resolving
// to target. The transformation is deterministic and side-effect free.
func EncodeMountPoint(target string) ([]byte, error) {
	if target == "" {
		return nil, errors.New(errors.ErrInvalidInput, "target path must not be empty")
	}
	if strings.ContainsRune(target, 0) {
		return nil, errors.New(errors.ErrInvalidInput, "target path contains a NUL character")
	}

	wide := utf16.Encode([]rune(target))
	if len(wide) > maxTargetUnits {
		return nil, errors.Newf(errors.ErrTargetTooLong,
			"target path of %d UTF-16 units exceeds the %d-unit reparse buffer ceiling",
			len(wide), maxTargetUnits)
	}

	targetBytes := len(wide) * 2
	dataLen := mountPointHeaderSize + targetBytes + trailerSize
	buf := make([]byte, headerSize+dataLen)

	binary.LittleEndian.PutUint32(buf[0:4], IOReparseTagMountPoint)
	binary.LittleEndian.PutUint16(buf[4:6], uint16(dataLen))
	// buf[6:8] reserved, already zero

	binary.LittleEndian.PutUint16(buf[8:10], 0) // substitute-name offset
	binary.LittleEndian.PutUint16(buf[10:12], uint16(targetBytes))
	for i, u := range wide {
		binary.LittleEndian.PutUint16(buf[12+i*2:14+i*2], u)
	}

	return buf, nil
}

// DecodeMountPoint reads the substitute-name region of a mount-point
// reparse buffer back into the target path. It is the inverse of
// EncodeMountPoint and exists for verification and tests.
func DecodeMountPoint(buf []byte) (string, error) {
	if len(buf) < headerSize+mountPointHeaderSize {
		return "", errors.New(errors.ErrInvalidInput, "reparse buffer too short")
	}
	if tag := binary.LittleEndian.Uint32(buf[0:4]); tag != IOReparseTagMountPoint {
		return "", errors.Newf(errors.ErrInvalidInput, "not a mount-point reparse buffer: tag 0x%X", tag)
	}

	dataLen := int(binary.LittleEndian.Uint16(buf[4:6]))
	if len(buf) < headerSize+dataLen {
		return "", errors.Newf(errors.ErrInvalidInput,
			"reparse buffer of %d bytes does not cover declared data length %d", len(buf), dataLen)
	}

	offset := int(binary.LittleEndian.Uint16(buf[8:10]))
	nameLen := int(binary.LittleEndian.Uint16(buf[10:12]))
	// The name region starts after the tag header and the two
	// substitute-name fields.
	start := headerSize + 4 + offset
	if nameLen%2 != 0 || start+nameLen > len(buf) {
		return "", errors.New(errors.ErrInvalidInput, "substitute name region out of bounds")
	}

	wide := make([]uint16, nameLen/2)
	for i := range wide {
		wide[i] = binary.LittleEndian.Uint16(buf[start+i*2 : start+i*2+2])
	}
	return string(utf16.Decode(wide)), nil
}
