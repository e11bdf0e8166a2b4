package server

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"Vector2/internal/sim"
)

type worldParamsConfig struct {
	Width          *float64 `json:"width"`
	Height         *float64 `json:"height"`
	MaxSpeed       *float64 `json:"maxSpeed"`
	Restitution    *float64 `json:"restitution"`
	TickHz         *float64 `json:"tickHz"`
	HistorySeconds *float64 `json:"historySeconds"`
}

type worldConfig struct {
	World *worldParamsConfig `json:"world"`
}

// ParamOverrides holds optional command-line overrides for the world parameters.
// A nil field leaves the value from the config file or defaults in place.
type ParamOverrides struct {
	Width       *float64
	Height      *float64
	MaxSpeed    *float64
	Restitution *float64
	TickHz      *float64
}

func (o ParamOverrides) apply(base sim.Params) sim.Params {
	return mergeWorldConfig(base, &worldParamsConfig{
		Width:       o.Width,
		Height:      o.Height,
		MaxSpeed:    o.MaxSpeed,
		Restitution: o.Restitution,
		TickHz:      o.TickHz,
	})
}

// mergeWorldConfig copies every field set in cfg onto base and sanitizes
// the result.
func mergeWorldConfig(base sim.Params, cfg *worldParamsConfig) sim.Params {
	if cfg != nil {
		for _, f := range []struct {
			src *float64
			dst *float64
		}{
			{cfg.Width, &base.Width},
			{cfg.Height, &base.Height},
			{cfg.MaxSpeed, &base.MaxSpeed},
			{cfg.Restitution, &base.Restitution},
			{cfg.TickHz, &base.TickHz},
			{cfg.HistorySeconds, &base.HistorySeconds},
		} {
			if f.src != nil {
				*f.dst = *f.src
			}
		}
	}
	return sim.SanitizeParams(base)
}

// loadParamsFromFile merges the JSON file at path over base. A missing file
// is not an error.
func loadParamsFromFile(path string, base sim.Params) (sim.Params, error) {
	if path == "" {
		return sim.SanitizeParams(base), nil
	}
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return sim.SanitizeParams(base), nil
		}
		return sim.SanitizeParams(base), fmt.Errorf("read world config %q: %w", cleanPath, err)
	}
	var cfg worldConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return sim.SanitizeParams(base), fmt.Errorf("parse world config %q: %w", cleanPath, err)
	}
	return mergeWorldConfig(base, cfg.World), nil
}
