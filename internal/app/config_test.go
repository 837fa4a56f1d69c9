package app

import (
	"errors"
	"flag"
	"testing"

	"cavis/internal/ca"
	"cavis/internal/core"
	"cavis/internal/session"
	"cavis/internal/settings"
)

func TestResolveDefaults(t *testing.T) {
	s, err := NewConfig().Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := settings.FromPreset(ca.DefaultPreset())
	if s != want {
		t.Fatalf("Resolve() = %+v, want %+v", s, want)
	}
}

func TestResolveFamilyDefaultPreset(t *testing.T) {
	cfg := NewConfig()
	cfg.Family = "cyclic"
	s, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s.Rule != ca.Presets(core.FamilyCyclic)[0].Rule {
		t.Fatalf("rule = %v", s.Rule)
	}
}

func TestResolveRulestringOverridesPreset(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := NewConfig()
	cfg.Bind(fs)
	err := fs.Parse([]string{"-family", "Lifelike", "-preset", "seeds", "-rule", "23/36", "-boundary", "clip", "-color-a", "000000"})
	if err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	s, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := ca.Rulestring(s.Rule); got != "23/36" {
		t.Fatalf("rule = %q", got)
	}
	if s.Boundary != core.BoundaryClip || s.Fill != core.FillSplatsBinary {
		t.Fatalf("boundary %v fill %v", s.Boundary, s.Fill)
	}
	if s.ColorA.R != 0 || s.ColorA.A != 0xff || s.ColorB != settings.DefaultColorB {
		t.Fatalf("colours %v %v", s.ColorA, s.ColorB)
	}
}

func TestResolveSettingsQuery(t *testing.T) {
	p, _ := ca.LookupPreset(core.FamilyCyclic, "imperfect")
	cfg := NewConfig()
	cfg.Family = "Lifelike"
	cfg.Settings = settings.FromPreset(p).Encode()
	s, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s.Family != core.FamilyCyclic || s.Rule != p.Rule {
		t.Fatalf("settings query ignored: %+v", s)
	}
}

func TestResolveErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Rulestring = "abc"
	if _, err := cfg.Resolve(); !errors.Is(err, session.ErrMalformedRulestring) {
		t.Fatalf("err = %v, want ErrMalformedRulestring", err)
	}

	cfg = NewConfig()
	cfg.Family = "hexagonal"
	if _, err := cfg.Resolve(); !errors.Is(err, core.ErrUnknownFamily) {
		t.Fatalf("err = %v, want ErrUnknownFamily", err)
	}

	cfg = NewConfig()
	cfg.Preset = "missing"
	if _, err := cfg.Resolve(); err == nil {
		t.Fatalf("unknown preset accepted")
	}

	cfg = NewConfig()
	cfg.Fill = "noise"
	if _, err := cfg.Resolve(); !errors.Is(err, core.ErrUnknownFillType) {
		t.Fatalf("err = %v, want ErrUnknownFillType", err)
	}
}

func TestFromMap(t *testing.T) {
	m, rest := ParseArgs([]string{"w=64", "h=-3", "seed=9", "rule=23/3", "hud=0", "extra"})
	if len(rest) != 1 || rest[0] != "extra" {
		t.Fatalf("rest = %v", rest)
	}
	cfg := NewConfig()
	cfg.FromMap(m)
	if cfg.W != 64 || cfg.H != NewConfig().H || cfg.Seed != 9 || cfg.Rulestring != "23/3" || cfg.HUDWidth != 0 {
		t.Fatalf("FromMap produced %+v", cfg)
	}
}

func TestSetupClampsSize(t *testing.T) {
	cfg := NewConfig()
	cfg.W, cfg.H = 0, 5
	s, _ := cfg.Resolve()
	setup := cfg.Setup(s)
	if setup.Size != (core.Size{W: 1, H: 5}) || setup.Seed != cfg.Seed {
		t.Fatalf("setup = %+v", setup)
	}
}
