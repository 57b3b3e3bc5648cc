package invaders

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot captures the full simulation state using primitive types only.
type Snapshot struct {
	Tick       uint64
	PauseUntil uint64

	Score     int
	HighScore int
	Level     int
	ShipsLeft int
	Active    bool

	ShipCenter  float64
	MovingLeft  bool
	MovingRight bool

	ShipSpeed      float64
	BulletSpeed    float64
	AlienSpeed     float64
	FleetDirection int
	AlienPoints    int

	// Bullets: 2 values each (X, Y); Y is the sub-cell position
	BulletData []float64

	// Aliens: 2 values each (X, Y); X is the sub-cell position
	AlienData []float64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	bullets := make([]float64, 0, g.bullets.Len()*2)
	for _, b := range g.bullets.sprites {
		bullets = append(bullets, float64(b.rect.X), b.Y)
	}
	aliens := make([]float64, 0, g.aliens.Len()*2)
	for _, a := range g.aliens.sprites {
		aliens = append(aliens, a.X, float64(a.rect.Y))
	}

	return Snapshot{
		Tick:       g.tick,
		PauseUntil: g.pauseUntil,

		Score:     g.stats.Score,
		HighScore: g.stats.HighScore,
		Level:     g.stats.Level,
		ShipsLeft: g.stats.ShipsLeft,
		Active:    g.stats.Active,

		ShipCenter:  g.ship.Center,
		MovingLeft:  g.ship.MovingLeft,
		MovingRight: g.ship.MovingRight,

		ShipSpeed:      g.settings.ShipSpeed,
		BulletSpeed:    g.settings.BulletSpeed,
		AlienSpeed:     g.settings.AlienSpeed,
		FleetDirection: g.settings.FleetDirection,
		AlienPoints:    g.settings.AlienPoints,

		BulletData: bullets,
		AlienData:  aliens,
	}
}

// Hash returns an FNV-1a digest of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putI := func(v int) { putU(uint64(v)) } //#nosec G115 -- hash computation
	putF := func(v float64) { putU(math.Float64bits(v)) }
	putB := func(v bool) {
		if v {
			putU(1)
		} else {
			putU(0)
		}
	}

	putU(snap.Tick)
	putU(snap.PauseUntil)
	putI(snap.Score)
	putI(snap.HighScore)
	putI(snap.Level)
	putI(snap.ShipsLeft)
	putB(snap.Active)
	putF(snap.ShipCenter)
	putB(snap.MovingLeft)
	putB(snap.MovingRight)
	putF(snap.ShipSpeed)
	putF(snap.BulletSpeed)
	putF(snap.AlienSpeed)
	putI(snap.FleetDirection)
	putI(snap.AlienPoints)

	putI(len(snap.BulletData))
	for _, v := range snap.BulletData {
		putF(v)
	}
	putI(len(snap.AlienData))
	for _, v := range snap.AlienData {
		putF(v)
	}

	return h.Sum64()
}
