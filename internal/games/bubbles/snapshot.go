package bubbles

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot contains the complete session state for replay checks and debugging.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick     uint64
	Score    int
	Health   int
	Phase    int
	Wave     int
	ShooterX float64

	// Each bubble is 5 floats: X, Y, Radius, VX, VY
	BubbleData []float64

	// Each bullet is 2 floats: X, Y
	BulletData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session

	bubbleData := make([]float64, 0, len(s.Bubbles)*5)
	for _, b := range s.Bubbles {
		bubbleData = append(bubbleData, b.X, b.Y, b.Radius, b.VX, b.VY)
	}

	bulletData := make([]float64, 0, len(s.Bullets)*2)
	for _, b := range s.Bullets {
		bulletData = append(bulletData, b.X, b.Y)
	}

	return Snapshot{
		Tick:       s.Tick,
		Score:      s.Score,
		Health:     s.Health,
		Phase:      int(s.Phase),
		Wave:       s.Wave,
		ShooterX:   s.Shooter.X,
		BubbleData: bubbleData,
		BulletData: bulletData,
	}
}

// Hash returns an FNV-1a digest of the snapshot.
// Equal states hash equally bit for bit, including float positions.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:]) //nolint:errcheck // hash.Hash never returns an error
	}
	writeF := func(f float64) { writeU(math.Float64bits(f)) }

	writeU(s.Tick)
	writeU(uint64(s.Score))  //nolint:gosec // bit pattern only
	writeU(uint64(s.Health)) //nolint:gosec // bit pattern only
	writeU(uint64(s.Phase))  //nolint:gosec // bit pattern only
	writeU(uint64(s.Wave))   //nolint:gosec // bit pattern only
	writeF(s.ShooterX)

	writeU(uint64(len(s.BubbleData)))
	for _, f := range s.BubbleData {
		writeF(f)
	}
	writeU(uint64(len(s.BulletData)))
	for _, f := range s.BulletData {
		writeF(f)
	}

	return h.Sum64()
}
