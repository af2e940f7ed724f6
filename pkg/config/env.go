package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables recognised by ApplyEnvOverrides
const (
	EnvMapWidth  = "GRAVFLIGHT_MAP_WIDTH"
	EnvMapHeight = "GRAVFLIGHT_MAP_HEIGHT"
	EnvFPS       = "GRAVFLIGHT_FPS"
)

// ApplyEnvOverrides replaces config values with any set environment variables
func (c *WorldConfig) ApplyEnvOverrides() error {
	if err := getEnvFloat(EnvMapWidth, &c.Map.Width); err != nil {
		return err
	}
	if err := getEnvFloat(EnvMapHeight, &c.Map.Height); err != nil {
		return err
	}
	if err := getEnvInt(EnvFPS, &c.Display.FPS); err != nil {
		return err
	}
	return nil
}

func getEnvFloat(key string, target *float64) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = value
	return nil
}

func getEnvInt(key string, target *int) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = value
	return nil
}
