package generator

import "goldmines/pkg/engine/rng"

// connectRooms joins each room to the next one in acceptance order
func (b *build) connectRooms() {
	for i := 1; i < b.rooms.Len(); i++ {
		from := b.rooms.At(i - 1).Center()
		to := b.rooms.At(i).Center()

		if rng.Bool(b.rng) {
			// Horizontal first, then vertical
			b.carveHorizontal(from.X, to.X, from.Y)
			b.carveVertical(from.Y, to.Y, to.X)
		} else {
			// Vertical first, then horizontal
			b.carveVertical(from.Y, to.Y, from.X)
			b.carveHorizontal(from.X, to.X, to.Y)
		}
	}
}

func (b *build) carveHorizontal(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	half := b.params.CorridorWidth / 2
	for x := x1; x <= x2; x++ {
		for off := -half; off <= half; off++ {
			b.carveCorridorCell(x, y+off)
		}
	}
}

func (b *build) carveVertical(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	half := b.params.CorridorWidth / 2
	for y := y1; y <= y2; y++ {
		for off := -half; off <= half; off++ {
			b.carveCorridorCell(x+off, y)
		}
	}
}

// carveCorridorCell carves inside the playable area only, so the outer wall ring stays intact
func (b *build) carveCorridorCell(x, y int) {
	if b.grid.IsPlayablePosition(x, y) {
		b.grid.Carve(x, y)
	}
}
