package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bcdannyboy/optsweep/models"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.Kind != European || cfg.Type != models.Call || cfg.Vary != models.Underlying {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.European != models.DefaultEuropeanParams() {
		t.Errorf("expected default European params; got %+v", cfg.European)
	}
	if cfg.End != 90 || cfg.Steps != 10 {
		t.Errorf("expected mesh 60..90 over 10 steps; got end %v steps %d", cfg.End, cfg.Steps)
	}
	if len(cfg.Metrics) != 3 {
		t.Errorf("expected all three metrics; got %v", cfg.Metrics)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("OPTSWEEP_KIND", "Perpetual")
	t.Setenv("OPTSWEEP_SIG", "0.25")
	t.Setenv("OPTSWEEP_TYPE", "put")
	t.Setenv("OPTSWEEP_VARY", "sig")
	t.Setenv("OPTSWEEP_END", "0.5")
	t.Setenv("OPTSWEEP_STEPS", "20")
	t.Setenv("OPTSWEEP_METRIC", "price, gamma")
	t.Setenv("OPTSWEEP_PROGRESS", "true")
	t.Setenv("OPTSWEEP_LOG_FORMAT", "json")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.Kind != Perpetual || cfg.Perpetual.Sig != 0.25 || cfg.Type != models.Put {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Vary != models.Sigma || cfg.End != 0.5 || cfg.Steps != 20 || !cfg.Progress {
		t.Errorf("unexpected sweep settings %+v", cfg)
	}
	if len(cfg.Metrics) != 2 || cfg.Metrics[1] != models.Gamma {
		t.Errorf("expected [price gamma]; got %v", cfg.Metrics)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("expected json log format; got %q", cfg.Log.Format)
	}
	if cfg.Begin() != 0.25 {
		t.Errorf("expected sweep to begin at sigma 0.25; got %v", cfg.Begin())
	}
}

func TestFromEnv_Malformed(t *testing.T) {
	cases := map[string]string{
		"OPTSWEEP_K":        "abc",
		"OPTSWEEP_STEPS":    "ten",
		"OPTSWEEP_PROGRESS": "maybe",
		"OPTSWEEP_KIND":     "bermudan",
		"OPTSWEEP_METRIC":   "vega",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := FromEnv()
			if err == nil {
				t.Fatalf("expected an error for %s=%s", key, value)
			}
			if !strings.Contains(err.Error(), key) {
				t.Errorf("expected error to name %s; got %v", key, err)
			}
		})
	}
}

func TestFromEnv_InvalidSteps(t *testing.T) {
	t.Setenv("OPTSWEEP_STEPS", "0")
	if _, err := FromEnv(); !errors.Is(err, models.ErrInvalidSteps) {
		t.Errorf("expected ErrInvalidSteps; got %v", err)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.env")
	if err := os.WriteFile(path, []byte("OPTSWEEP_U=72\nOPTSWEEP_OUTPUT=out.json\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// godotenv never overrides variables that are already set; register
	// the keys with t.Setenv first so they are restored after the test.
	t.Setenv("OPTSWEEP_U", "")
	t.Setenv("OPTSWEEP_OUTPUT", "")
	os.Unsetenv("OPTSWEEP_U")
	os.Unsetenv("OPTSWEEP_OUTPUT")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.European.U != 72 || cfg.Output != "out.json" {
		t.Errorf("expected values from env file; got U=%v output=%q", cfg.European.U, cfg.Output)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("expected a missing env file to be tolerated; got %v", err)
	}
}
