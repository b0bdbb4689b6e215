package levels

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/common"
)

//go:embed *.map
var LevelsFS embed.FS

var ErrInvalidMap = errors.New("levels: invalid map")

// Dictionary kinds. Background tiles only draw; gameplay tiles also collide.
const (
	Background = 1
	Gameplay   = 2
)

// TileDef is one dictionary line: a symbol, the sheet frame it draws and,
// for gameplay dictionaries, its collision box measured from the tile's
// top-left corner.
type TileDef struct {
	Symbol    byte
	Sheet     string
	Frame     image.Rectangle
	Collision bool
	Box       common.Rect
}

// Tile is a non-empty grid cell.
type Tile struct {
	Symbol byte
	Col    int
	Row    int
}

// Layer is a parsed .map file.
type Layer struct {
	Name       string
	Dictionary int
	Defs       map[byte]TileDef
	Origin     cp.Vector
	TileWidth  float64
	TileHeight float64
	Cols       int
	Rows       int
	// Tiles holds defined cells in row-major order; Undefined holds cells
	// whose symbol has no dictionary entry.
	Tiles     []Tile
	Undefined []Tile
}

func LoadLayerFromFS(name string) (*Layer, error) {
	f, err := LevelsFS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	defer f.Close()
	return Parse(name, f)
}

func LoadLayer(fsys fs.FS, name string) (*Layer, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	defer f.Close()
	return Parse(name, f)
}

// Parse reads the map format:
//
//	dictionary 1|2
//	<symbol> <sheet> <x y w h> [<box x y w h>]
//	map origin <x y> tile <w h> size <cols rows>
//	<grid rows>
//
// Dictionary 2 lines carry the collision box. In the grid '.' and ' ' are
// empty. Rows and columns beyond the declared size are ignored.
func Parse(name string, r io.Reader) (*Layer, error) {
	p := parser{name: name, scanner: bufio.NewScanner(r)}
	layer := &Layer{Name: name, Defs: make(map[byte]TileDef)}

	header, ok := p.next()
	if !ok {
		return nil, p.fail("missing dictionary declaration")
	}
	fields := strings.Fields(header)
	if len(fields) != 2 || fields[0] != "dictionary" {
		return nil, p.fail("invalid dictionary declaration %q", header)
	}
	kind, err := strconv.Atoi(fields[1])
	if err != nil || (kind != Background && kind != Gameplay) {
		return nil, p.fail("invalid dictionary kind %q", fields[1])
	}
	layer.Dictionary = kind

	var line string
	for {
		line, ok = p.next()
		if !ok {
			return nil, p.fail("missing map declaration")
		}
		if strings.HasPrefix(line, "map origin") {
			break
		}
		def, err := p.tileDef(line, kind)
		if err != nil {
			return nil, err
		}
		layer.Defs[def.Symbol] = def
	}

	if err := p.mapHeader(line, layer); err != nil {
		return nil, err
	}

	for row := 0; row < layer.Rows; row++ {
		line, ok := p.next()
		if !ok {
			break
		}
		for col := 0; col < layer.Cols && col < len(line); col++ {
			symbol := line[col]
			if symbol == '.' || symbol == ' ' {
				continue
			}
			tile := Tile{Symbol: symbol, Col: col, Row: row}
			if _, ok := layer.Defs[symbol]; !ok {
				layer.Undefined = append(layer.Undefined, tile)
				continue
			}
			layer.Tiles = append(layer.Tiles, tile)
		}
	}
	if err := p.scanner.Err(); err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return layer, nil
}

// Position is the world position of a tile's bottom-left corner.
func (l *Layer) Position(t Tile) cp.Vector {
	return cp.Vector{
		X: l.Origin.X + float64(t.Col)*l.TileWidth,
		Y: l.Origin.Y + float64(t.Row+1)*l.TileHeight,
	}
}

// TileName is the entity name for a tile.
func (l *Layer) TileName(t Tile) string {
	return fmt.Sprintf("tile_%c_%d_%d", t.Symbol, t.Col, t.Row)
}

// Count returns how many tiles use symbol.
func (l *Layer) Count(symbol byte) int {
	n := 0
	for _, t := range l.Tiles {
		if t.Symbol == symbol {
			n++
		}
	}
	return n
}

type parser struct {
	name    string
	scanner *bufio.Scanner
	line    int
}

// next returns the next non-empty line.
func (p *parser) next() (string, bool) {
	for p.scanner.Scan() {
		p.line++
		line := strings.TrimRight(p.scanner.Text(), "\r")
		if line != "" {
			return line, true
		}
	}
	return "", false
}

func (p *parser) fail(format string, args ...any) error {
	return fmt.Errorf("%w: %s:%d: %s", ErrInvalidMap, p.name, p.line, fmt.Sprintf(format, args...))
}

func (p *parser) tileDef(line string, kind int) (TileDef, error) {
	fields := strings.Fields(line)
	want := 6
	if kind == Gameplay {
		want = 10
	}
	if len(fields) != want || len(fields[0]) != 1 {
		return TileDef{}, p.fail("tile definition %q: want %d fields", line, want)
	}
	nums, err := p.numbers(fields[2:])
	if err != nil {
		return TileDef{}, err
	}

	def := TileDef{
		Symbol: fields[0][0],
		Sheet:  fields[1],
		Frame:  image.Rect(int(nums[0]), int(nums[1]), int(nums[0]+nums[2]), int(nums[1]+nums[3])),
	}
	if kind == Gameplay {
		def.Collision = true
		def.Box = common.NewRect(nums[4], nums[5], nums[6], nums[7])
	}
	return def, nil
}

func (p *parser) mapHeader(line string, layer *Layer) error {
	f := strings.Fields(line)
	if len(f) != 10 || f[0] != "map" || f[1] != "origin" || f[4] != "tile" || f[7] != "size" {
		return p.fail("invalid map declaration %q", line)
	}
	nums, err := p.numbers([]string{f[2], f[3], f[5], f[6], f[8], f[9]})
	if err != nil {
		return err
	}
	layer.Origin = cp.Vector{X: nums[0], Y: nums[1]}
	layer.TileWidth, layer.TileHeight = nums[2], nums[3]
	layer.Cols, layer.Rows = int(nums[4]), int(nums[5])
	if layer.TileWidth <= 0 || layer.TileHeight <= 0 || layer.Cols < 0 || layer.Rows < 0 {
		return p.fail("invalid map geometry %q", line)
	}
	return nil
}

func (p *parser) numbers(fields []string) ([]float64, error) {
	nums := make([]float64, len(fields))
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, p.fail("number %q: %v", s, err)
		}
		nums[i] = v
	}
	return nums, nil
}
