package server

import (
	"Vector2/internal/sim"
	"Vector2/vector"
)

type pointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p pointDTO) toVector() *vector.Vector2 {
	return vector.New(p.X, p.Y)
}

type bodyDTO struct {
	ID      int     `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	VX      float64 `json:"vx"`
	VY      float64 `json:"vy"`
	Speed   float64 `json:"speed"`
	Heading float64 `json:"heading"` // radians
}

type worldMetaDTO struct {
	W        float64 `json:"w"`
	H        float64 `json:"h"`
	MaxSpeed float64 `json:"max_speed"`
}

type stateMsg struct {
	Type   string       `json:"type"`
	Now    float64      `json:"now"`
	Delay  float64      `json:"delay,omitempty"`
	Meta   worldMetaDTO `json:"meta"`
	Bodies []bodyDTO    `json:"bodies"`
}

// inboundMessage covers every client command; unused fields stay zero.
type inboundMessage struct {
	Type   string     `json:"type"`
	ID     int        `json:"id,omitempty"`
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	VX     float64    `json:"vx"`
	VY     float64    `json:"vy"`
	Speed  float64    `json:"speed"`
	Points []pointDTO `json:"points,omitempty"`
}

type ackMsg struct {
	Type     string  `json:"type"`
	ID       int     `json:"id,omitempty"`
	OK       bool    `json:"ok"`
	Distance float64 `json:"distance,omitempty"`
	Error    string  `json:"error,omitempty"`
}

func bodiesToDTO(states []sim.BodyState) []bodyDTO {
	out := make([]bodyDTO, 0, len(states))
	for _, st := range states {
		out = append(out, bodyDTO{
			ID:      int(st.ID),
			X:       st.Pos.X,
			Y:       st.Pos.Y,
			VX:      st.Vel.X,
			VY:      st.Vel.Y,
			Speed:   st.Vel.Magnitude(),
			Heading: st.Heading,
		})
	}
	return out
}

func buildStateMsg(h *Hub, delay float64) stateMsg {
	now, states := h.State(delay)
	p := h.Params()
	return stateMsg{
		Type:   "state",
		Now:    now,
		Delay:  delay,
		Meta:   worldMetaDTO{W: p.Width, H: p.Height, MaxSpeed: p.MaxSpeed},
		Bodies: bodiesToDTO(states),
	}
}
