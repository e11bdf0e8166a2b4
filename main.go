package main

import (
	"flag"
	"math"

	"Vector2/internal/server"
)

func main() {
	cfg := server.DefaultAppConfig()
	addr := flag.String("addr", cfg.Addr, "address to listen on (e.g., 127.0.0.1:8080)")
	worldConfigPath := flag.String("world-config", cfg.WorldConfigPath, "path to world tuning JSON")
	width := flag.Float64("width", math.NaN(), "override world width")
	height := flag.Float64("height", math.NaN(), "override world height")
	maxSpeed := flag.Float64("max-speed", math.NaN(), "override maximum body speed in units/s")
	restitution := flag.Float64("restitution", math.NaN(), "override wall bounce restitution (0-1)")
	tickHz := flag.Float64("tick-hz", math.NaN(), "override simulation tick rate")
	flag.Parse()

	cfg.Addr = *addr
	cfg.WorldConfigPath = *worldConfigPath
	cfg.Overrides = server.ParamOverrides{
		Width:       optional(*width),
		Height:      optional(*height),
		MaxSpeed:    optional(*maxSpeed),
		Restitution: optional(*restitution),
		TickHz:      optional(*tickHz),
	}

	server.StartApp(cfg)
}

// optional maps the NaN flag default to "not set".
func optional(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
