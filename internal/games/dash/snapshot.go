package dash

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a flat copy of the session state, used to check that two
// runs with the same seed and inputs stay in lockstep.
type Snapshot struct {
	Tick           int
	PlayerX        float64
	PlayerY        float64
	PlayerVX       float64
	PlayerVY       float64
	Freedom        int
	LibertyShields int
	Frontier       float64
	GameOver       bool

	// Rectangles flattened as X, Y, W, H.
	Obstacles    []float64
	Collectibles []float64
}

// Snapshot captures the current session state.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	snap := Snapshot{
		Tick:           g.tickCount,
		PlayerX:        p.x,
		PlayerY:        p.y,
		PlayerVX:       p.vx,
		PlayerVY:       p.vy,
		Freedom:        p.freedom,
		LibertyShields: p.libertyShields,
		Frontier:       g.level.frontier,
		GameOver:       g.gameOver,
		Obstacles:      make([]float64, 0, len(g.level.obstacles)*4),
		Collectibles:   make([]float64, 0, len(g.level.collectibles)*4),
	}
	for _, o := range g.level.obstacles {
		snap.Obstacles = append(snap.Obstacles, o.Rect.X, o.Rect.Y, o.Rect.W, o.Rect.H)
	}
	for _, c := range g.level.collectibles {
		snap.Collectibles = append(snap.Collectibles, c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H)
	}
	return snap
}

// Hash returns an FNV-1a digest of the snapshot.
func (s *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putF := func(f float64) { put(math.Float64bits(f)) }

	put(uint64(s.Tick)) //#nosec G115 -- tick count is never negative
	putF(s.PlayerX)
	putF(s.PlayerY)
	putF(s.PlayerVX)
	putF(s.PlayerVY)
	put(uint64(s.Freedom))        //#nosec G115 -- hash input
	put(uint64(s.LibertyShields)) //#nosec G115 -- hash input
	putF(s.Frontier)
	if s.GameOver {
		put(1)
	} else {
		put(0)
	}
	put(uint64(len(s.Obstacles)))
	for _, v := range s.Obstacles {
		putF(v)
	}
	put(uint64(len(s.Collectibles)))
	for _, v := range s.Collectibles {
		putF(v)
	}
	return h.Sum64()
}
