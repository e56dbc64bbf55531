package mazefile_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/lvmaze/internal/mazetest"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/mazefile"
)

// TestCodecProperties checks the codec against generated inputs.
func TestCodecProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("compress then decompress restores border and role", prop.ForAll(
		func(role, border uint8) bool {
			b, r := mazefile.Decompress(mazefile.Compress(maze.Square{
				Border: maze.Border(border),
				Role:   maze.Role(role),
			}))
			return b == maze.Border(border) && r == maze.Role(role)
		},
		gen.UInt8Range(0, uint8(maze.Wall)),
		gen.UInt8Range(0, uint8(maze.BorderMask)),
	))

	properties.Property("unmarshal(marshal(m)) equals m", prop.ForAll(
		func(width, height int, seed int64) bool {
			m := mazetest.Random(width, height, seed)
			data, err := mazefile.Marshal(m)
			if err != nil || len(data) != mazefile.HeaderSize+width*height {
				return false
			}
			got, err := mazefile.Unmarshal(data)
			return err == nil && got.Equal(m) &&
				got.Width() == m.Width() && got.Height() == m.Height()
		},
		gen.IntRange(2, 12),
		gen.IntRange(1, 12),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// TestCompress_Exhaustive walks every role and border pair once.
func TestCompress_Exhaustive(t *testing.T) {
	for r := maze.None; r <= maze.Wall; r++ {
		for b := maze.Empty; b <= maze.BorderMask; b++ {
			gotB, gotR := mazefile.Decompress(mazefile.Compress(maze.Square{Border: b, Role: r}))
			if gotB != b || gotR != r {
				t.Fatalf("role %s border %s: got %s %s", r, b, gotR, gotB)
			}
		}
	}
}
