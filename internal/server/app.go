package server

import (
	"context"
	"log"

	"Vector2/internal/sim"
)

type AppConfig struct {
	Addr            string
	WorldConfigPath string
	Overrides       ParamOverrides
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		Addr:            ":8080",
		WorldConfigPath: "configs/world.json",
	}
}

func resolveParams(cfg AppConfig) sim.Params {
	params := sim.DefaultParams()
	loaded, err := loadParamsFromFile(cfg.WorldConfigPath, params)
	if err != nil {
		log.Printf("world config: %v (using defaults)", err)
	} else {
		params = loaded
	}
	return cfg.Overrides.apply(params)
}

func StartApp(cfg AppConfig) {
	params := resolveParams(cfg)
	hub := NewHub(params)
	go hub.Run(context.Background())

	log.Printf("starting playground on %s (world %.0fx%.0f, max speed %.1f, restitution %.2f, %.0f Hz)",
		cfg.Addr, params.Width, params.Height, params.MaxSpeed, params.Restitution, params.TickHz)
	startServer(hub, cfg.Addr)
}
