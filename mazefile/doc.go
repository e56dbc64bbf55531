// Package mazefile reads and writes mazes in the compact binary maze format.
//
// Layout (all integers unsigned, multi-byte values little-endian):
//
//	offset  size         field
//	0       4            magic, ASCII "MAZE"
//	4       1            format version (1)
//	5       4            width
//	9       4            height
//	13      width*height one byte per square, index order: role<<4 | border
//
// Decoding is a single, non-restartable pass: the header is checked, the
// whole payload is read, the squares are materialised in index order and the
// result goes through maze.New, so a structurally invalid payload is
// reported as a maze.ErrGridInvariant error rather than accepted.
//
// Errors:
//
//   - ErrFormat: the input does not start with the magic tag, or declares an
//     unreasonable size.
//   - ErrUnsupportedVersion: the version byte is not FormatVersion.
//   - ErrDimensions: Encode got a square count that does not match width*height.
//   - I/O errors, including io.ErrUnexpectedEOF for truncated input, are
//     returned as they are.
package mazefile
