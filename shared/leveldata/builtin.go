package leveldata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BuiltinName names the grid course compiled into the binary.
const BuiltinName = "built-in"

// BuiltinGrid is the default test course, one rune per tile.
//
//	# solid   / \ ramps   - one-way platform   = floating platform
//	x dead zone   P spawn
var BuiltinGrid = []string{
	"########################################################################",
	"#......................................................................#",
	"#......................................................................#",
	"#......................................................................#",
	"#...............................----.........................#.........#",
	"#............................................................#.........#",
	"#.........................................===................#.........#",
	"#.......................#####................................#....#....#",
	"#.......................#...#.........................----...#....#....#",
	"#.............----......#...#................................#....#....#",
	"#.......................#...#.....................................#....#",
	"#.......................#...#.....................................#....#",
	"#...............................---...............................#....#",
	"#.................................................................#....#",
	"#..................../#\\..............#####.......#.........../####....#",
	"#.P................./###\\.............#####.......#........../#####....#",
	"#####################################xxxxxxx############################",
	"########################################################################",
}

// Load reads a TMX file from disk, or parses BuiltinGrid when path is empty.
// It returns the level name along with its collision data.
func Load(path string, tileSize float64) (string, *CollisionData, error) {
	if path == "" {
		data, err := ParseGrid(BuiltinGrid, tileSize)
		if err != nil {
			return "", nil, fmt.Errorf("parse built-in level: %w", err)
		}
		return BuiltinName, data, nil
	}

	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	data, err := LoadCollisionData(os.DirFS(dir), file)
	if err != nil {
		return "", nil, err
	}
	return strings.TrimSuffix(file, filepath.Ext(file)), data, nil
}
