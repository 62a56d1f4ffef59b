package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "FLIGHT_"

// ApplyEnv overrides tunables from FLIGHT_* environment variables.
// FLIGHT_PROFILE is handled by the caller before the file is loaded.
func ApplyEnv(config *FlightConfig) error {
	floats := map[string]*float64{
		"ACCELERATION":        &config.Physics.Acceleration,
		"CLIMB_ACCELERATION":  &config.Physics.ClimbAcceleration,
		"GROUND_FRICTION":     &config.Physics.GroundFriction,
		"GRAVITY":             &config.Physics.Gravity,
		"TURN_RATE":           &config.Physics.TurnRate,
		"BANK_INCREMENT":      &config.Physics.BankIncrement,
		"BANK_DECAY":          &config.Physics.BankDecay,
		"MAX_BANK":            &config.Physics.MaxBank,
		"TURN_FORCE":          &config.Physics.TurnForce,
		"AIR_RESISTANCE_BASE": &config.Physics.AirResistanceBase,
		"TAKEOFF_SPEED":       &config.Landing.TakeoffSpeed,
		"SAFE_DESCENT_SPEED":  &config.Landing.SafeDescentSpeed,
		"SAFE_LANDING_BANK":   &config.Landing.SafeLandingBank,
		"GROUND_LEVEL":        &config.World.GroundLevel,
		"MIN_X":               &config.World.MinX,
		"MAX_X":               &config.World.MaxX,
		"MIN_Y":               &config.World.MinY,
		"MAX_Y":               &config.World.MaxY,
		"START_X":             &config.World.Start.X,
		"START_Y":             &config.World.Start.Y,
	}
	for name, dst := range floats {
		if err := envFloat(EnvPrefix+name, dst); err != nil {
			return err
		}
	}

	if err := envInt(EnvPrefix+"TICK_RATE", &config.Physics.TickRate); err != nil {
		return err
	}
	if err := envBool(EnvPrefix+"BANKING", &config.Physics.Banking); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvPrefix + "INPUT_POLICY"); ok && v != "" {
		config.Input.Policy = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "RENDERER"); ok && v != "" {
		config.Display.Renderer = v
	}

	return nil
}

// ProfileFromEnv returns FLIGHT_PROFILE or fallback when it is unset
func ProfileFromEnv(fallback string) string {
	if v := os.Getenv(EnvPrefix + "PROFILE"); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid %s: %q is not a finite number", key, v)
	}
	*dst = f
	return nil
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func envBool(key string, dst *bool) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = b
	return nil
}
