package world

import (
	"errors"
	"fmt"
)

// ErrMalformedMap is wrapped by map construction and parse failures.
var ErrMalformedMap = errors.New("malformed map")

// Map is an immutable grid of tile ids. Cell (i, j) is column i, row j.
type Map struct {
	width  int
	height int
	tiles  []TileID
}

// NewMap takes ownership of tiles, laid out row-major.
func NewMap(width, height int, tiles []TileID) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrMalformedMap, width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w: %d tiles for %dx%d", ErrMalformedMap, len(tiles), width, height)
	}
	for idx, id := range tiles {
		if id < EmptyTile {
			return nil, fmt.Errorf("%w: invalid tile id %d at (%d, %d)", ErrMalformedMap, id, idx%width, idx/width)
		}
	}
	return &Map{width: width, height: height, tiles: tiles}, nil
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }

func (m *Map) index(i, j int) int {
	if i < 0 || j < 0 || i >= m.width || j >= m.height {
		panic(fmt.Sprintf("world: cell (%d, %d) outside %dx%d map", i, j, m.width, m.height))
	}
	return i + j*m.width
}

// Get returns the tile at cell (i, j).
func (m *Map) Get(i, j int) TileID {
	return m.tiles[m.index(i, j)]
}

// IsEmpty reports whether cell (i, j) is walkable.
func (m *Map) IsEmpty(i, j int) bool {
	return m.tiles[m.index(i, j)] == EmptyTile
}

// Contains reports whether the map coordinate (x, y) falls inside the grid.
func (m *Map) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(m.width) && y < float64(m.height)
}

// IsEmptyAt is IsEmpty for a map coordinate; outside the grid counts as
// blocked.
func (m *Map) IsEmptyAt(x, y float64) bool {
	if !m.Contains(x, y) {
		return false
	}
	return m.IsEmpty(int(x), int(y))
}

// MaxTileID returns the largest id used, or EmptyTile for an empty map.
func (m *Map) MaxTileID() TileID {
	maxID := EmptyTile
	for _, id := range m.tiles {
		maxID = max(maxID, id)
	}
	return maxID
}
