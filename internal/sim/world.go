package sim

import (
	"math"

	"Vector2/internal/mathx"
	"Vector2/vector"
)

type BodyID int

// Body is a point mass. With waypoints it steers along them at Speed,
// otherwise it drifts with Vel and bounces off the world edges.
type Body struct {
	ID        BodyID
	Pos       *vector.Vector2
	Vel       *vector.Vector2
	Speed     float64
	Waypoints []*vector.Vector2
	Index     int
	History   *History
}

// BodyState is a copy of a body at one instant.
type BodyState struct {
	ID      BodyID
	Pos     vector.Vector2
	Vel     vector.Vector2
	Heading float64
}

// World is not safe for concurrent use; callers hold their own lock.
type World struct {
	Now    float64
	Params Params

	bodies map[BodyID]*Body
	order  []BodyID
	nextID BodyID
}

func NewWorld(p Params) *World {
	return &World{
		Params: SanitizeParams(p),
		bodies: map[BodyID]*Body{},
	}
}

// Spawn adds a free body. pos and vel are copied.
func (w *World) Spawn(pos, vel *vector.Vector2) BodyID {
	w.nextID++
	id := w.nextID
	b := &Body{
		ID:      id,
		Pos:     w.clampToBounds(pos.Clone()),
		Vel:     vel.Clone(),
		History: NewHistory(w.Params.HistorySeconds, w.Params.TickHz),
	}
	w.bodies[id] = b
	w.order = append(w.order, id)
	b.History.Push(Snapshot{T: w.Now, Pos: *b.Pos, Vel: *b.Vel})
	return id
}

// SetRoute replaces the body's waypoints. Points are copied and clamped
// into the world. An empty route turns the body loose again.
func (w *World) SetRoute(id BodyID, speed float64, points []*vector.Vector2) bool {
	b, ok := w.bodies[id]
	if !ok {
		return false
	}
	route := make([]*vector.Vector2, 0, len(points))
	for _, p := range points {
		route = append(route, w.clampToBounds(p.Clone()))
	}
	b.Waypoints = route
	b.Index = 0
	b.Speed = mathx.Clamp(speed, 0, w.Params.MaxSpeed)
	return true
}

func (w *World) Body(id BodyID) *Body {
	return w.bodies[id]
}

// Bodies returns bodies in spawn order.
func (w *World) Bodies() []*Body {
	out := make([]*Body, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.bodies[id])
	}
	return out
}

func (w *World) Step(dt float64) {
	if !(dt > 0) {
		return
	}
	w.Now += dt
	for _, id := range w.order {
		b := w.bodies[id]
		if b.Index < len(b.Waypoints) {
			w.followRoute(b, dt)
		} else {
			w.drift(b, dt)
		}
		b.History.Push(Snapshot{T: w.Now, Pos: *b.Pos, Vel: *b.Vel})
	}
}

func (w *World) followRoute(b *Body, dt float64) {
	start := b.Pos
	target := b.Waypoints[b.Index]
	next := vector.MoveTowards(b.Pos, target, b.Speed*dt)
	if next == target {
		// Arrived. Keep our own copy so later steps don't move the waypoint.
		next = target.Clone()
		b.Index++
	}
	b.Pos = next
	if b.Index >= len(b.Waypoints) {
		b.Waypoints = nil
		b.Index = 0
		b.Vel = vector.Zero()
		return
	}
	b.Vel = vector.SubtractVectors(b.Pos, start).DivideScalar(dt)
}

func (w *World) drift(b *Body, dt float64) {
	if b.Vel.Magnitude() > w.Params.MaxSpeed {
		b.Vel.SetLength(w.Params.MaxSpeed)
	}
	b.Pos.Add(b.Vel.Clone().MultiplyScalar(dt))
	w.bounce(b)
}

// bounce reflects the velocity off any edge the body has crossed while
// still heading outward, then pulls the body back inside.
func (w *World) bounce(b *Body) {
	p := w.Params
	walls := []struct {
		out    bool
		normal *vector.Vector2
	}{
		{b.Pos.X < 0, vector.Right()},
		{b.Pos.X > p.Width, vector.Left()},
		{b.Pos.Y < 0, vector.Up()},
		{b.Pos.Y > p.Height, vector.Down()},
	}
	for _, wall := range walls {
		if wall.out && vector.Dot(b.Vel, wall.normal) < 0 {
			b.Vel = vector.Reflect(b.Vel, wall.normal).MultiplyScalar(p.Restitution)
		}
	}
	w.clampToBounds(b.Pos)
}

func (w *World) clampToBounds(v *vector.Vector2) *vector.Vector2 {
	return v.Set(mathx.Clamp(v.X, 0, w.Params.Width), mathx.Clamp(v.Y, 0, w.Params.Height))
}

// State copies every body at the current time. With delay > 0 positions
// are read from history as they were delay seconds ago.
func (w *World) State(delay float64) []BodyState {
	out := make([]BodyState, 0, len(w.order))
	for _, b := range w.Bodies() {
		st := BodyState{ID: b.ID, Pos: *b.Pos, Vel: *b.Vel}
		if delay > 0 {
			if snap, ok := b.History.At(w.Now - delay); ok {
				st.Pos = snap.Pos
				st.Vel = snap.Vel
			}
		}
		st.Heading = Heading(&st.Vel)
		out = append(out, st)
	}
	return out
}

// Nearest returns the body closest to p and its distance, or nil and +Inf
// for an empty world.
func (w *World) Nearest(p *vector.Vector2) (*Body, float64) {
	var best *Body
	bestSq := math.Inf(1)
	for _, b := range w.Bodies() {
		if d := vector.DistanceSquared(b.Pos, p); d < bestSq {
			best = b
			bestSq = d
		}
	}
	return best, math.Sqrt(bestSq)
}

// Heading is the direction of vel in radians, or 0 when at rest.
func Heading(vel *vector.Vector2) float64 {
	return vector.Angle(vector.Zero(), vel)
}
