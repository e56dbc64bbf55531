package mazefile

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvmaze/maze"
)

// Compress packs a square's role into the high nibble and its border into
// the low nibble of one byte.
func Compress(sq maze.Square) byte {
	return byte(sq.Role)<<4 | byte(sq.Border&maze.BorderMask)
}

// Decompress splits a payload byte back into border and role.
// The role is not checked here; maze.New rejects undefined roles.
func Decompress(b byte) (maze.Border, maze.Role) {
	return maze.Border(b & 0x0F), maze.Role(b >> 4)
}

// Encode writes a complete maze file for squares laid out on a
// width x height grid. Squares are written in slice order, which for a
// valid maze is index order.
func Encode(w io.Writer, width, height int, squares []maze.Square) error {
	if width < 0 || height < 0 || uint64(width) > math.MaxUint32 || uint64(height) > math.MaxUint32 {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	if len(squares) != width*height {
		return fmt.Errorf("%w: %d squares for %dx%d", ErrDimensions, len(squares), width, height)
	}

	h := Header{Version: FormatVersion, Width: uint32(width), Height: uint32(height)}
	if _, err := h.WriteTo(w); err != nil {
		return err
	}

	payload := make([]byte, len(squares))
	for i, sq := range squares {
		payload[i] = Compress(sq)
	}
	_, err := w.Write(payload)
	return err
}

// Marshal returns the maze file bytes of m.
func Marshal(m *maze.Maze) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(HeaderSize + m.Len())
	if err := Encode(&buf, m.Width(), m.Height(), m.Squares()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads one maze file from r and builds the Maze it describes.
//
// Steps:
//  1. Magic tag (ErrFormat) and version (ErrUnsupportedVersion).
//  2. Width and height; width*height above MaxCells is ErrFormat.
//  3. Exactly width*height payload bytes (io.ErrUnexpectedEOF if short).
//  4. Squares rebuilt in index order: row, column = divmod(i, width).
//  5. maze.New validates the grid.
func Decode(r io.Reader) (*maze.Maze, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if h.Version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, h.Version, FormatVersion)
	}
	if h.Cells() > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d squares", ErrFormat, h.Width, h.Height, MaxCells)
	}

	payload := make([]byte, h.Cells())
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}

	width := int(h.Width)
	squares := make([]maze.Square, len(payload))
	for i, b := range payload {
		border, role := Decompress(b)
		squares[i] = maze.Square{
			Index:  i,
			Row:    i / width,
			Column: i % width,
			Border: border,
			Role:   role,
		}
	}
	return maze.New(squares)
}

// Unmarshal decodes a maze from data.
func Unmarshal(data []byte) (*maze.Maze, error) {
	return Decode(bytes.NewReader(data))
}
