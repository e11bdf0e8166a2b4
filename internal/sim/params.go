package sim

import (
	"math"

	"Vector2/internal/mathx"
)

const (
	DefaultWidth          = 8000.0
	DefaultHeight         = 4500.0
	DefaultMaxSpeed       = 250.0 // units/s
	DefaultRestitution    = 1.0
	DefaultTickHz         = 20.0
	DefaultHistorySeconds = 30.0
	UpdateRateHz          = 10.0 // per-client state pushes

	// Upper bounds keep the tick interval above a millisecond and the
	// per-body history ring at a bounded size.
	MaxTickHz         = 1000.0
	MaxHistorySeconds = 120.0
)

// Params tunes a World. Use SanitizeParams before handing user input to NewWorld.
type Params struct {
	Width          float64
	Height         float64
	MaxSpeed       float64
	Restitution    float64
	TickHz         float64
	HistorySeconds float64
}

func DefaultParams() Params {
	return Params{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		MaxSpeed:       DefaultMaxSpeed,
		Restitution:    DefaultRestitution,
		TickHz:         DefaultTickHz,
		HistorySeconds: DefaultHistorySeconds,
	}
}

func SanitizeParams(p Params) Params {
	d := DefaultParams()
	if !(p.Width > 0) || math.IsInf(p.Width, 1) {
		p.Width = d.Width
	}
	if !(p.Height > 0) || math.IsInf(p.Height, 1) {
		p.Height = d.Height
	}
	if !(p.MaxSpeed > 0) || math.IsInf(p.MaxSpeed, 1) {
		p.MaxSpeed = d.MaxSpeed
	}
	if math.IsNaN(p.Restitution) {
		p.Restitution = d.Restitution
	}
	p.Restitution = mathx.Clamp(p.Restitution, 0, 1)
	if !(p.TickHz > 0) || math.IsInf(p.TickHz, 1) {
		p.TickHz = d.TickHz
	}
	p.TickHz = math.Min(p.TickHz, MaxTickHz)
	if !(p.HistorySeconds > 0) || math.IsInf(p.HistorySeconds, 1) {
		p.HistorySeconds = d.HistorySeconds
	}
	p.HistorySeconds = math.Min(p.HistorySeconds, MaxHistorySeconds)
	return p
}

// Dt is the fixed step length for p.TickHz.
func (p Params) Dt() float64 {
	return 1.0 / p.TickHz
}
