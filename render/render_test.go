package render

import (
	"image"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	a := r.Register(TilesSheet, StarFrame)
	b := r.Register(TilesSheet, StarFrame)
	c := r.Register(CharactersSheet, image.Rect(640, 128, 512, 0))

	assert.Equal(t, component.SpriteID(0), a)
	assert.NotEqual(t, a, b, "every registration gets its own id")
	assert.Equal(t, 3, r.Len())

	f, ok := r.Frame(c)
	require.True(t, ok)
	assert.Equal(t, image.Rect(512, 0, 640, 128), f.Src, "rectangles are canonical")

	w, h, ok := r.SpriteSize(a)
	require.True(t, ok)
	assert.Equal(t, [2]float64{64, 64}, [2]float64{w, h})

	for _, id := range []component.SpriteID{-1, 3, component.NoSprite} {
		_, ok := r.Frame(id)
		assert.False(t, ok)
		_, _, ok = r.SpriteSize(id)
		assert.False(t, ok)
	}

	var ids []component.SpriteID
	for id := range r.All() {
		ids = append(ids, id)
	}
	assert.Equal(t, []component.SpriteID{0, 1, 2}, ids)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, '*', Describe(Frame{Sheet: TilesSheet, Src: StarFrame}).Glyph)
	for d := range 10 {
		assert.Equal(t, rune('0'+d), Describe(Frame{Sheet: TilesSheet, Src: DigitFrame(d)}).Glyph)
	}
	assert.Equal(t, '#', Describe(Frame{Sheet: TilesSheet, Src: image.Rect(0, 0, 64, 64)}).Glyph)
	assert.Equal(t, '=', Describe(Frame{Sheet: TilesSheet, Src: image.Rect(64, 0, 128, 64)}).Glyph)
	assert.Equal(t, '@', Describe(Frame{Sheet: CharactersSheet, Src: image.Rect(512, 0, 640, 128)}).Glyph)
	assert.Equal(t, '?', Describe(Frame{Sheet: "unknown"}).Glyph)

	sky := Describe(Frame{Sheet: BackgroundsSheet, Src: image.Rect(0, 0, 64, 64)})
	assert.Equal(t, ' ', sky.Glyph)
	assert.NotZero(t, sky.Fill.A)
}

func TestDigitFramesFitTheSheet(t *testing.T) {
	sheet := image.Rectangle{Max: image.Point(SheetSize[TilesSheet])}
	for d := range 10 {
		assert.True(t, DigitFrame(d).In(sheet), "digit %d", d)
	}
	assert.True(t, StarFrame.In(sheet))
}

func TestPlan(t *testing.T) {
	w, err := ecs.NewWorld(component.Types)
	require.NoError(t, err)
	r := NewRegistry()
	star := r.Register(TilesSheet, StarFrame)
	digit := r.Register(TilesSheet, DigitFrame(4))

	add := func(name string, loc *cp.Vector, sprite component.Sprite) ecs.EntityID {
		id := w.CreateEntity(name)
		if loc != nil {
			require.NoError(t, ecs.Add(w, id, component.LocationComponent, component.Location{Position: *loc}))
		}
		require.NoError(t, ecs.Add(w, id, component.SpriteComponent, sprite))
		return id
	}
	world := add("star", &cp.Vector{X: 100, Y: 200}, component.NewSprite(star, common.NewRect(0, -64, 64, 64), true))
	hud := add("digit", &cp.Vector{X: 40, Y: 0}, component.NewSprite(digit, common.NewRect(0, 0, 64, 64), false))
	dead := component.NewSprite(star, common.NewRect(0, 0, 8, 8), true)
	dead.Alive = false
	add("collected", &cp.Vector{}, dead)
	add("unregistered", &cp.Vector{}, component.NewSprite(99, common.NewRect(0, 0, 8, 8), true))
	bare := add("bare", nil, component.NewSprite(digit, common.NewRect(0, 0, 64, 64), false))

	cam := &component.Camera{UnitsPerPixel: 2, View: cp.Vector{X: 50, Y: 100}}
	ops := Plan(w, r, cam, nil)

	require.Len(t, ops, 3)
	assert.Equal(t, world, ops[0].Entity)
	assert.Equal(t, common.Rect{Min: cp.Vector{X: 25, Y: 18}, Width: 32, Height: 32}, ops[0].Dst)
	assert.False(t, ops[0].Screen)
	assert.Equal(t, StarFrame, ops[0].Frame.Src)

	assert.Equal(t, hud, ops[1].Entity)
	assert.Equal(t, common.NewRect(40, 0, 64, 64), ops[1].Dst)
	assert.True(t, ops[1].Screen)

	assert.Equal(t, bare, ops[2].Entity)
	assert.Equal(t, cp.Vector{}, ops[2].Dst.Min, "screen sprites without location draw at the origin")
}

func TestPlanWorldSpriteWithoutLocation(t *testing.T) {
	w, err := ecs.NewWorld(component.Types, ecs.WithMode(ecs.Lenient))
	require.NoError(t, err)
	r := NewRegistry()
	id := w.CreateEntity("ghost")
	require.NoError(t, ecs.Add(w, id, component.SpriteComponent,
		component.NewSprite(r.Register(TilesSheet, StarFrame), common.NewRect(0, 0, 64, 64), true)))

	assert.Empty(t, Plan(w, r, nil, nil))

	strict, err := ecs.NewWorld(component.Types)
	require.NoError(t, err)
	id = strict.CreateEntity("ghost")
	require.NoError(t, ecs.Add(strict, id, component.SpriteComponent,
		component.NewSprite(0, common.NewRect(0, 0, 64, 64), true)))
	assert.Panics(t, func() { Plan(strict, r, nil, nil) })
}

func TestDrawOpVisible(t *testing.T) {
	assert.True(t, DrawOp{Dst: common.NewRect(-10, -10, 20, 20)}.Visible(100, 100))
	assert.False(t, DrawOp{Dst: common.NewRect(100, 0, 20, 20)}.Visible(100, 100))
	assert.False(t, DrawOp{Dst: common.NewRect(0, -20, 20, 20)}.Visible(100, 100))
}

func TestPaintSheet(t *testing.T) {
	r := NewRegistry()
	r.Register(TilesSheet, image.Rect(0, 0, 64, 64))
	r.Register(TilesSheet, StarFrame)
	r.Register(BackgroundsSheet, image.Rect(0, 0, 64, 64))

	tiles := PaintSheet(r, TilesSheet)
	assert.Equal(t, image.Rectangle{Max: image.Pt(1024, 1024)}, tiles.Bounds())

	ground := Describe(Frame{Sheet: TilesSheet, Src: image.Rect(0, 0, 64, 64)})
	assert.Equal(t, ground.Fill, tiles.RGBAAt(0, 0), "corners keep the fill")
	assert.Equal(t, ground.Fill, tiles.RGBAAt(63, 63))
	assert.Zero(t, tiles.RGBAAt(100, 100).A, "unregistered cells stay transparent")

	var inked int
	for y := StarFrame.Min.Y; y < StarFrame.Max.Y; y++ {
		for x := StarFrame.Min.X; x < StarFrame.Max.X; x++ {
			if tiles.RGBAAt(x, y) == yellow {
				inked++
			}
		}
	}
	assert.Positive(t, inked, "star glyph is drawn")
	assert.Zero(t, tiles.RGBAAt(StarFrame.Min.X, StarFrame.Min.Y).A)

	sky := PaintSheet(r, BackgroundsSheet)
	assert.Equal(t, skyPalette[0], sky.RGBAAt(32, 32), "plain sky has no glyph")
}

func TestPaintSheetGrowsForOutlyingFrames(t *testing.T) {
	r := NewRegistry()
	r.Register("custom", image.Rect(10, 10, 20, 30))
	img := PaintSheet(r, "custom")
	assert.Equal(t, image.Rect(10, 10, 20, 30), img.Bounds())
	assert.Equal(t, '?', Describe(Frame{Sheet: "custom"}).Glyph)
}
