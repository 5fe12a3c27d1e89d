package generator

import (
	"goldmines/pkg/engine/rng"
	"goldmines/pkg/engine/world"
)

const (
	roomAttempts     = 100
	secretRoomChance = 0.2
	sampleAttempts   = 200
)

// placeRooms samples room rectangles for a fixed number of attempts and carves the
// ones that overlap nothing accepted so far
func (b *build) placeRooms() {
	p := b.params
	w, h := b.grid.Width(), b.grid.Height()

	for attempt := 0; attempt < roomAttempts && b.rooms.Len() < p.MaxRooms; attempt++ {
		roomW := rng.IntRange(b.rng, p.MinRoomSize, p.MaxRoomSize)
		roomH := rng.IntRange(b.rng, p.MinRoomSize, p.MaxRoomSize)

		// Keep a one tile border on every side
		maxX, maxY := w-roomW-1, h-roomH-1
		if maxX < 1 || maxY < 1 {
			continue
		}
		room := world.Room{
			X:      rng.IntRange(b.rng, 1, maxX),
			Y:      rng.IntRange(b.rng, 1, maxY),
			Width:  roomW,
			Height: roomH,
		}
		if !b.rooms.Add(room) {
			continue
		}
		b.grid.CarveRoom(room)

		// The second room always becomes the secret room; each later one takes over at 20%
		if b.rooms.Len() > 1 && (b.secret < 0 || rng.Chance(b.rng, secretRoomChance)) {
			b.secret = b.rooms.Len() - 1
		}
	}
}
