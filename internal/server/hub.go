package server

import (
	"context"
	"sync"
	"time"

	"Vector2/internal/sim"
	"Vector2/vector"
)

// Hub owns the shared world and serializes access to it.
type Hub struct {
	mu    sync.Mutex
	world *sim.World
}

func NewHub(p sim.Params) *Hub {
	return &Hub{world: sim.NewWorld(p)}
}

func (h *Hub) Params() sim.Params {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.world.Params
}

func (h *Hub) Tick() {
	h.mu.Lock()
	h.world.Step(h.world.Params.Dt())
	h.mu.Unlock()
}

// Run advances the world at its tick rate until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	interval := time.Duration(float64(time.Second) * h.Params().Dt())
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Tick()
		}
	}
}

func (h *Hub) Spawn(pos, vel *vector.Vector2) sim.BodyID {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.world.Spawn(pos, vel)
}

func (h *Hub) SetRoute(id sim.BodyID, speed float64, points []*vector.Vector2) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.world.SetRoute(id, speed, points)
}

// State returns the world clock and every body as seen delay seconds ago.
func (h *Hub) State(delay float64) (float64, []sim.BodyState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.world.Now, h.world.State(delay)
}

// Nearest reports the body closest to p, if any.
func (h *Hub) Nearest(p *vector.Vector2) (sim.BodyID, float64, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	b, d := h.world.Nearest(p)
	if b == nil {
		return 0, d, false
	}
	return b.ID, d, true
}
