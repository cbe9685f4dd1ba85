// Package config reads the sweep driver settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/bcdannyboy/optsweep/logging"
	"github.com/bcdannyboy/optsweep/models"
	"github.com/bcdannyboy/optsweep/sweep"
	"github.com/joho/godotenv"
)

const prefix = "OPTSWEEP_"

type Kind string

const (
	European  Kind = "european"
	Perpetual Kind = "perpetual"
)

type Config struct {
	Kind      Kind
	European  models.EuropeanParams
	Perpetual models.PerpetualParams
	Type      models.OptionType

	Vary    models.Parameter
	End     float64
	Steps   int
	Metrics []models.Metric

	Workers  int // 0 picks the logical CPU count
	Progress bool
	Output   string

	Log logging.Config
}

// Load applies envFile (".env" when empty) to the process environment and
// builds a Config from the OPTSWEEP_* variables. A missing env file is not
// an error.
func Load(envFile string) (*Config, error) {
	var err error
	if envFile == "" {
		err = godotenv.Load()
	} else {
		err = godotenv.Load(envFile)
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		European:  models.DefaultEuropeanParams(),
		Perpetual: models.DefaultPerpetualParams(),
		Type:      models.Call,
		Vary:      models.Underlying,
		Steps:     10,
		Metrics:   []models.Metric{models.Price, models.Delta, models.Gamma},
		Output:    "sweep.json",
		Log:       logging.DefaultConfig(),
	}

	switch kind := Kind(strings.ToLower(envString("KIND", string(European)))); kind {
	case European, Perpetual:
		cfg.Kind = kind
	default:
		return nil, fmt.Errorf("%sKIND: unknown option kind %q", prefix, kind)
	}

	var err error
	if cfg.Kind == European {
		e := &cfg.European
		for _, f := range []struct {
			key string
			dst *float64
		}{{"T", &e.T}, {"K", &e.K}, {"SIG", &e.Sig}, {"R", &e.R}, {"U", &e.U}, {"B", &e.B}} {
			if *f.dst, err = envFloat(f.key, *f.dst); err != nil {
				return nil, err
			}
		}
	} else {
		p := &cfg.Perpetual
		for _, f := range []struct {
			key string
			dst *float64
		}{{"K", &p.K}, {"SIG", &p.Sig}, {"R", &p.R}, {"U", &p.U}, {"B", &p.B}} {
			if *f.dst, err = envFloat(f.key, *f.dst); err != nil {
				return nil, err
			}
		}
	}

	if v, ok := lookup("TYPE"); ok {
		if cfg.Type, err = models.ParseOptionType(v); err != nil {
			return nil, fmt.Errorf("%sTYPE: %w", prefix, err)
		}
	}
	if v, ok := lookup("VARY"); ok {
		if cfg.Vary, err = models.ParseParameter(v); err != nil {
			return nil, fmt.Errorf("%sVARY: %w", prefix, err)
		}
	}
	if v, ok := lookup("METRIC"); ok && strings.ToLower(v) != "all" {
		cfg.Metrics = cfg.Metrics[:0]
		for _, name := range strings.Split(v, ",") {
			m, err := models.ParseMetric(strings.TrimSpace(name))
			if err != nil {
				return nil, fmt.Errorf("%sMETRIC: %w", prefix, err)
			}
			cfg.Metrics = append(cfg.Metrics, m)
		}
	}

	if cfg.Steps, err = envInt("STEPS", cfg.Steps); err != nil {
		return nil, err
	}
	if cfg.Steps < 1 {
		return nil, fmt.Errorf("%sSTEPS: %w", prefix, models.ErrInvalidSteps)
	}
	if cfg.End, err = envFloat("END", 1.5*cfg.Begin()); err != nil {
		return nil, err
	}
	if cfg.Workers, err = envInt("WORKERS", 0); err != nil {
		return nil, err
	}
	if cfg.Progress, err = envBool("PROGRESS", false); err != nil {
		return nil, err
	}
	cfg.Output = envString("OUTPUT", cfg.Output)

	cfg.Log.Level = envString("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = envString("LOG_FORMAT", cfg.Log.Format)
	cfg.Log.Output = envString("LOG_OUTPUT", cfg.Log.Output)
	cfg.Log.FilePath = envString("LOG_FILE", cfg.Log.FilePath)

	return cfg, nil
}

// Begin is the base value of the varied parameter, the first mesh point.
func (c *Config) Begin() float64 {
	if c.Kind == Perpetual {
		return sweep.PerpetualVariedValue(c.Perpetual, c.Vary)
	}
	return sweep.VariedValue(c.European, c.Vary)
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(prefix + key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func envString(key, def string) string {
	if v, ok := lookup(key); ok {
		return v
	}
	return def
}

func envFloat(key string, def float64) (float64, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s%s: %w", prefix, key, err)
	}
	return f, nil
}

func envInt(key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s%s: %w", prefix, key, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s%s: %w", prefix, key, err)
	}
	return b, nil
}
