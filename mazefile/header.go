package mazefile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Magic identifies a maze file.
var Magic = [4]byte{'M', 'A', 'Z', 'E'}

// FormatVersion is the only version this package reads and writes.
const FormatVersion uint8 = 1

// HeaderSize is the number of bytes before the payload.
const HeaderSize = len(Magic) + 1 + 4 + 4

// MaxCells bounds width*height accepted by Decode, so a corrupted header
// cannot force a huge allocation.
const MaxCells = 1 << 26

// Header is the fixed-size prefix of a maze file.
type Header struct {
	Version uint8
	Width   uint32
	Height  uint32
}

// Cells returns width*height.
func (h Header) Cells() uint64 {
	return uint64(h.Width) * uint64(h.Height)
}

// ReadHeader reads and checks the magic tag, then reads the version and
// dimensions. The version is returned as found; callers decide what to
// accept. Input too short for the magic tag is ErrFormat; truncation after
// the tag is reported as io.ErrUnexpectedEOF.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	n, err := io.ReadFull(r, buf[:len(Magic)])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return Header{}, fmt.Errorf("%w: %d-byte input has no magic %q", ErrFormat, n, Magic[:])
	}
	if err != nil {
		return Header{}, err
	}
	if !bytes.Equal(buf[:len(Magic)], Magic[:]) {
		return Header{}, fmt.Errorf("%w: magic %q", ErrFormat, buf[:len(Magic)])
	}
	if _, err := io.ReadFull(r, buf[len(Magic):]); err != nil {
		return Header{}, err
	}

	rest := buf[len(Magic):]
	return Header{
		Version: rest[0],
		Width:   binary.LittleEndian.Uint32(rest[1:5]),
		Height:  binary.LittleEndian.Uint32(rest[5:9]),
	}, nil
}

// WriteTo writes the magic tag followed by h.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, HeaderSize)
	buf = append(buf, Magic[:]...)
	buf = append(buf, h.Version)
	buf = binary.LittleEndian.AppendUint32(buf, h.Width)
	buf = binary.LittleEndian.AppendUint32(buf, h.Height)

	n, err := w.Write(buf)
	return int64(n), err
}
