package entity

import (
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/levels"
)

// LoadedLayer is a map layer turned into entities, indexed by tile symbol.
type LoadedLayer struct {
	Layer    *levels.Layer
	entities map[byte][]ecs.EntityID
	count    int
}

// Entities returns the tiles with the given symbol, in map order.
func (l *LoadedLayer) Entities(symbol byte) []ecs.EntityID {
	return l.entities[symbol]
}

func (l *LoadedLayer) Len() int {
	return l.count
}

// LoadLayer creates one entity per tile: a Location at the tile's
// bottom-left corner, a world-space Sprite filling the cell and, for
// gameplay tiles whose symbol is not in nonCollidable, a static Collision.
// Undefined symbols were dropped by the parser and are only logged here.
func LoadLayer(w *ecs.World, layer *levels.Layer, nonCollidable string, opts Options) (*LoadedLayer, error) {
	if opts.Sprites == nil {
		return nil, ErrNoSprites
	}
	for _, t := range layer.Undefined {
		w.Logger().Warn("undefined tile symbol", "map", layer.Name, "symbol", string(t.Symbol), "col", t.Col, "row", t.Row)
	}

	loaded := &LoadedLayer{Layer: layer, entities: make(map[byte][]ecs.EntityID)}
	bounds := common.NewRect(0, -layer.TileHeight, layer.TileWidth, layer.TileHeight)
	for _, t := range layer.Tiles {
		def := layer.Defs[t.Symbol]

		e := w.CreateEntity(layer.TileName(t))
		if err := ecs.Add(w, e, component.LocationComponent, component.Location{Position: layer.Position(t)}); err != nil {
			return loaded, err
		}
		id := opts.Sprites.Register(def.Sheet, def.Frame)
		if err := ecs.Add(w, e, component.SpriteComponent, component.NewSprite(id, bounds, true)); err != nil {
			return loaded, err
		}
		if def.Collision && !strings.ContainsRune(nonCollidable, rune(t.Symbol)) {
			box := def.Box.Translate(cp.Vector{Y: -layer.TileHeight})
			if err := ecs.Add(w, e, component.CollisionComponent, component.NewCollision(box, true)); err != nil {
				return loaded, err
			}
		}

		loaded.entities[t.Symbol] = append(loaded.entities[t.Symbol], e)
		loaded.count++
	}
	w.Logger().Info("loaded map layer", "map", layer.Name, "dictionary", layer.Dictionary, "tiles", loaded.count)
	return loaded, nil
}
