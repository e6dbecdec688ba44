package world

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// MapData is a parsed map file: the grid plus the markers found in it.
type MapData struct {
	Map      *Map
	HasStart bool
	StartX   float64 // cell center of the '@' marker
	StartY   float64
	Sprites  []Sprite
}

// defaultLayout is the built-in 16x16 level.
var defaultLayout = []string{
	"0000222222220000",
	"1              0",
	"1      11111   0",
	"1     0        0",
	"0     0  1110000",
	"0     3        0",
	"0   10000      0",
	"0   3   11100  0",
	"5   4   0      0",
	"5   4   1  00000",
	"0       1      0",
	"2       1      0",
	"0       0      0",
	"0 0000000      0",
	"0              0",
	"0002222222200000",
}

// DefaultMap returns the built-in level.
func DefaultMap() *Map {
	data, err := ParseMap(strings.NewReader(strings.Join(defaultLayout, "\n")))
	if err != nil {
		panic(fmt.Sprintf("world: built-in map: %v", err))
	}
	return data.Map
}

// LoadMap reads a map file from disk.
func LoadMap(path string) (*MapData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", path, err)
	}
	defer file.Close()

	data, err := ParseMap(file)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	return data, nil
}

// ParseMap reads the text map format. Blank lines and lines starting with
// '#' are skipped. Digits are tile ids, ' ' and '.' are empty, '@' is the
// player start and 'a'..'j' place a sprite using texture letter-'a'.
func ParseMap(r io.Reader) (*MapData, error) {
	var lines []string
	var lineNumbers []int // file line of each kept row
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
		lineNumbers = append(lineNumbers, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no map rows", ErrMalformedMap)
	}

	height := len(lines)
	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: line %d has inconsistent width: expected %d, got %d",
				ErrMalformedMap, lineNumbers[i], width, len(line))
		}
	}

	data := &MapData{}
	tiles := make([]TileID, 0, width*height)
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			ch := line[x]
			switch {
			case ch >= '0' && ch <= '9':
				tiles = append(tiles, TileID(ch-'0'))
			case ch == ' ' || ch == '.':
				tiles = append(tiles, EmptyTile)
			case ch == '@':
				if data.HasStart {
					return nil, fmt.Errorf("%w: second start marker at line %d column %d", ErrMalformedMap, lineNumbers[y], x+1)
				}
				data.HasStart = true
				data.StartX, data.StartY = float64(x)+0.5, float64(y)+0.5
				tiles = append(tiles, EmptyTile)
			case ch >= 'a' && ch <= 'j':
				data.Sprites = append(data.Sprites, Sprite{
					X:         float64(x) + 0.5,
					Y:         float64(y) + 0.5,
					TextureID: int(ch - 'a'),
				})
				tiles = append(tiles, EmptyTile)
			default:
				return nil, fmt.Errorf("%w: unexpected %q at line %d column %d", ErrMalformedMap, ch, lineNumbers[y], x+1)
			}
		}
	}

	m, err := NewMap(width, height, tiles)
	if err != nil {
		return nil, err
	}
	data.Map = m
	return data, nil
}
