package leveldata

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyGrid   = errors.New("leveldata: empty grid")
	ErrUnknownTile = errors.New("leveldata: unknown tile")
	ErrRaggedGrid  = errors.New("leveldata: grid rows differ in width")
)

// Grid runes understood by ParseGrid.
const (
	GridEmpty      = ' '
	GridAir        = '.'
	GridSolid      = '#'
	GridRampRight  = '/'
	GridRampLeft   = '\\'
	GridPlatform   = '-'
	GridFloating   = '='
	GridDeadZone   = 'x'
	GridSpawn      = 'P'
	floatTravel    = 3 // tiles a floating platform travels
	platformHeight = 4 // fraction of a tile
)

// ParseGrid builds collision data from ASCII rows, one rune per tile.
// Runs of platform tiles on a row merge into a single platform. Every row
// must be the same width.
func ParseGrid(rows []string, tileSize float64) (*CollisionData, error) {
	if len(rows) == 0 || tileSize <= 0 {
		return nil, ErrEmptyGrid
	}

	width := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	if width == 0 {
		return nil, ErrEmptyGrid
	}
	for y, row := range rows {
		if n := len([]rune(row)); n != width {
			return nil, fmt.Errorf("row %d has %d tiles, want %d: %w", y, n, width, ErrRaggedGrid)
		}
	}

	data := &CollisionData{
		MapWidth:  int(float64(width) * tileSize),
		MapHeight: int(float64(len(rows)) * tileSize),
		TileSize:  tileSize,
	}

	for y, row := range rows {
		top := float64(y) * tileSize
		runStart, runKind := -1, rune(0)

		flush := func(end int) {
			if runStart < 0 {
				return
			}
			p := PlatformRect{
				X: float64(runStart) * tileSize,
				Y: top,
				W: float64(end-runStart) * tileSize,
				H: tileSize / platformHeight,
			}
			if runKind == GridFloating {
				p.Float = floatTravel * tileSize
			}
			data.Platforms = append(data.Platforms, p)
			runStart = -1
		}

		cols := []rune(row)
		for x, r := range cols {
			left := float64(x) * tileSize
			if runStart >= 0 && r != runKind {
				flush(x)
			}

			switch r {
			case GridEmpty, GridAir:
			case GridSolid:
				data.SolidRects = append(data.SolidRects, SolidRect{X: left, Y: top, W: tileSize, H: tileSize})
			case GridRampRight:
				data.SolidRects = append(data.SolidRects, SolidRect{X: left, Y: top, W: tileSize, H: tileSize, SlopeType: SlopeUpRight})
			case GridRampLeft:
				data.SolidRects = append(data.SolidRects, SolidRect{X: left, Y: top, W: tileSize, H: tileSize, SlopeType: SlopeUpLeft})
			case GridPlatform, GridFloating:
				if runStart < 0 {
					runStart, runKind = x, r
				}
			case GridDeadZone:
				data.DeadZones = append(data.DeadZones, DeadZone{X: left, Y: top, W: tileSize, H: tileSize})
			case GridSpawn:
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     left + tileSize/2,
					Y:     top + tileSize,
					Index: len(data.SpawnPoints),
				})
			default:
				return nil, fmt.Errorf("row %d col %d %q: %w", y, x, r, ErrUnknownTile)
			}
		}
		flush(len(cols))
	}

	return data, nil
}
