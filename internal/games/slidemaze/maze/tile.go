package maze

// TileID identifies a tile for the lifetime of its maze.
type TileID int

// Tile is one sliding piece of the maze.
type Tile struct {
	ID        TileID
	Cell      Cell     // Logical cell, changes only on commit
	Openings  Openings // Doorway mask
	Immovable bool     // Anchors never change cell under a push
	Pos       Vec2     // Visual position, offset from Cell while dragging
}

// NewTile creates a tile resting on its cell.
func NewTile(cell Cell, openings Openings, immovable bool) *Tile {
	return &Tile{
		Cell:      cell,
		Openings:  openings,
		Immovable: immovable,
		Pos:       cell.Vec(),
	}
}

// Rest returns the visual position matching the logical cell.
func (t *Tile) Rest() Vec2 {
	return t.Cell.Vec()
}

// Offset returns how far the tile is displayed from its logical cell.
func (t *Tile) Offset() Vec2 {
	return t.Pos.Sub(t.Rest())
}
