package maze

// Commit snaps every tile's visual position onto the grid and makes the
// rounded cell its new logical cell. The player rides the first tile, in ID
// order, that sat on the player's cell before the commit.
//
// Committing again without an intervening drag changes nothing.
func (w *World) Commit() {
	carried := false
	playerCell := w.player.Cell

	for _, t := range w.maze.tiles {
		prev := t.Cell
		t.Cell = Round(t.Pos)
		t.Pos = t.Rest()

		if !carried && prev == playerCell {
			w.player.Cell = t.Cell
			carried = true
		}
	}

	w.maze.reindex()
	w.stats.Commits++
}
