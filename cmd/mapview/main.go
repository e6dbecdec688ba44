// Command mapview browses map files top-down, with the start and sprite
// markers drawn over the tiles.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sort"

	"raymarch/internal/config"
	"raymarch/internal/graphics"
	"raymarch/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	windowWidth  = 1200
	windowHeight = 800
	sidebarWidth = 300
)

type mapInfo struct {
	Path string
	Data *world.MapData
	Err  error
}

type viewer struct {
	maps        []mapInfo
	mapIndex    int
	walls       *graphics.TextureAtlas
	legendLines []string
	showLegend  bool
	lastErr     string
}

func main() {
	configPath := flag.String("config", "config.yaml", "configuration file")
	flag.Parse()
	ensureRuntimeCWD(*configPath)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("Warning: %v, using defaults", err)
		cfg = config.Default()
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths, _ = filepath.Glob("assets/maps/*.map")
	}
	maps := loadMaps(paths)

	walls, err := graphics.LoadOrPlaceholder(cfg.Textures.Walls, graphics.WallAtlas,
		cfg.Textures.PlaceholderSize, max(cfg.Textures.PlaceholderCount, 10))
	if err != nil {
		log.Fatalf("Failed to load wall textures: %v", err)
	}

	v := &viewer{
		maps:        maps,
		walls:       walls,
		legendLines: buildLegendLines(walls),
	}
	if len(maps) == 0 {
		v.lastErr = "no maps loaded"
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("raymarch map viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.showLegend = !v.showLegend
	}
	if len(v.maps) == 0 {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		v.mapIndex = (v.mapIndex + 1) % len(v.maps)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		v.mapIndex = (v.mapIndex - 1 + len(v.maps)) % len(v.maps)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	if len(v.maps) == 0 {
		ebitenutil.DebugPrintAt(screen, v.lastErr, 16, 16)
		return
	}

	m := v.maps[v.mapIndex]
	if m.Err != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s failed to load: %v", m.Path, m.Err), 16, 16)
		return
	}

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	padding := 16
	mapAreaW := screenW - sidebarWidth - padding*3
	mapAreaH := screenH - padding*2
	sidebarX := padding + mapAreaW + padding

	v.drawMapPanel(screen, m, padding, padding, mapAreaW, mapAreaH)
	v.drawSidebar(screen, m, sidebarX, padding, sidebarWidth, mapAreaH)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

func (v *viewer) drawMapPanel(screen *ebiten.Image, m mapInfo, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{20, 20, 35, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	grid := m.Data.Map
	tileSize := max(min(w/grid.Width(), h/grid.Height()), 2)
	originX := x + (w-grid.Width()*tileSize)/2
	originY := y + (h-grid.Height()*tileSize)/2

	floor := color.RGBA{200, 200, 200, 255}
	for ty := 0; ty < grid.Height(); ty++ {
		for tx := 0; tx < grid.Width(); tx++ {
			c := floor
			if !grid.IsEmpty(tx, ty) {
				c = v.tileColor(grid.Get(tx, ty))
			}
			drawFilledRect(screen, originX+tx*tileSize, originY+ty*tileSize, tileSize, tileSize, c)
		}
	}

	if m.Data.HasStart {
		drawMarkerCircle(screen, originX, originY, tileSize, m.Data.StartX, m.Data.StartY, color.RGBA{50, 200, 255, 255}, true)
	}
	for _, sp := range m.Data.Sprites {
		drawMarkerCircle(screen, originX, originY, tileSize, sp.X, sp.Y, color.RGBA{230, 80, 80, 255}, false)
		drawMarkerLetter(screen, originX, originY, tileSize, sp.X, sp.Y, string(rune('a'+sp.TextureID)))
	}

	ebitenutil.DebugPrintAt(screen, filepath.Base(m.Path), x+12, y+8)
	ebitenutil.DebugPrintAt(screen, "Left/Right (or A/D) to switch maps, Tab for legend, Esc to quit", x+12, y+24)
}

func (v *viewer) drawSidebar(screen *ebiten.Image, m mapInfo, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{18, 18, 26, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})
	row := y + 12

	if v.showLegend {
		for _, line := range v.legendLines {
			ebitenutil.DebugPrintAt(screen, line, x+12, row)
			row += 14
		}
		return
	}

	grid := m.Data.Map
	start := "none"
	if m.Data.HasStart {
		start = fmt.Sprintf("(%.1f, %.1f)", m.Data.StartX, m.Data.StartY)
	}
	stats := []string{
		fmt.Sprintf("Map %d of %d", v.mapIndex+1, len(v.maps)),
		fmt.Sprintf("Tiles: %dx%d", grid.Width(), grid.Height()),
		fmt.Sprintf("Highest tile id: %d", grid.MaxTileID()),
		fmt.Sprintf("Sprites: %d", len(m.Data.Sprites)),
		fmt.Sprintf("Start: %s", start),
	}
	for _, line := range stats {
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 16
	}
	row += 8
	ebitenutil.DebugPrintAt(screen, "Cyan: start  Red: sprites", x+12, row)
}

// tileColor matches the in-game minimap: the top-left texel of the tile's
// wall texture.
func (v *viewer) tileColor(id world.TileID) color.RGBA {
	if int(id) >= v.walls.TextureCount() {
		return color.RGBA{255, 0, 255, 255}
	}
	r, g, b, _ := graphics.UnpackColor(v.walls.Pixel(0, 0, int(id)))
	return color.RGBA{r, g, b, 255}
}

func loadMaps(paths []string) []mapInfo {
	sort.Strings(paths)
	maps := make([]mapInfo, 0, len(paths))
	for _, path := range paths {
		data, err := world.LoadMap(path)
		maps = append(maps, mapInfo{Path: path, Data: data, Err: err})
	}
	return maps
}

func buildLegendLines(walls *graphics.TextureAtlas) []string {
	lines := []string{
		"Map characters",
		"--------------",
		"0-9   wall, texture id",
		"' '/. floor",
		"@     player start",
		"a-j   sprite, texture letter-'a'",
		"#     comment line",
		"",
		fmt.Sprintf("Wall atlas: %d textures of %dpx", walls.TextureCount(), walls.TextureSize()),
	}
	return lines
}

func drawMarkerCircle(screen *ebiten.Image, originX, originY, tileSize int, mx, my float64, clr color.RGBA, stroke bool) {
	centerX := float32(float64(originX) + mx*float64(tileSize))
	centerY := float32(float64(originY) + my*float64(tileSize))
	radius := float32(tileSize) * 0.35
	vector.DrawFilledCircle(screen, centerX, centerY, radius, clr, true)
	if stroke {
		vector.StrokeCircle(screen, centerX, centerY, radius, 1, color.RGBA{255, 255, 255, 255}, true)
	}
}

func drawMarkerLetter(screen *ebiten.Image, originX, originY, tileSize int, mx, my float64, letter string) {
	if tileSize < 12 {
		return
	}
	ebitenutil.DebugPrintAt(screen, letter, originX+int(mx*float64(tileSize))-3, originY+int(my*float64(tileSize))-8)
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.RGBA) {
	t := float32(thickness)
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)
	vector.DrawFilledRect(screen, fx, fy, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy+fh-t, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy, t, fh, clr, false)
	vector.DrawFilledRect(screen, fx+fw-t, fy, t, fh, clr, false)
}

// ensureRuntimeCWD switches to the executable's directory when the config
// is not reachable from the current one.
func ensureRuntimeCWD(configPath string) {
	if _, err := os.Stat(configPath); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	_ = os.Chdir(filepath.Dir(exe))
}
