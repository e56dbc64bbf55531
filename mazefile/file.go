package mazefile

import (
	"bufio"
	"os"

	"github.com/katalvlaran/lvmaze/maze"
)

// Load opens the maze file at path and decodes it.
// The file is closed before Load returns, on success and on failure.
func Load(path string) (*maze.Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(bufio.NewReader(f))
}

// Dump writes m to path, creating or truncating the file.
// A failure to flush or close the file is reported.
func Dump(m *maze.Maze, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err = Encode(w, m.Width(), m.Height(), m.Squares()); err != nil {
		return err
	}
	return w.Flush()
}
