package logger

import (
	"context"
	"errors"
	"testing"
)

func TestInitAndGet(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}
	l := Get()
	if l == nil {
		t.Fatal("Get() returned nil after Init()")
	}

	ctx := context.Background()
	l.Debug(ctx, "debug message", String("k", "v"))
	l.Info(ctx, "info message", Int("n", 42))
	l.Warn(ctx, "warn message", Bool("flag", true))
	l.Error(ctx, "error message", Error(errors.New("boom")))
}

func TestNamed(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}
	sub := Named("scoring")
	if sub == nil {
		t.Fatal("Named() returned nil")
	}
	sub.Info(context.Background(), "named logger works", Float64("score", 87.5))
}

func TestFieldConstructors(t *testing.T) {
	cases := []struct {
		field Field
		key   string
	}{
		{String("s", "v"), "s"},
		{Int("i", 1), "i"},
		{Float64("f", 1.5), "f"},
		{Bool("b", true), "b"},
		{Any("a", struct{}{}), "a"},
		{Error(errors.New("x")), "error"},
	}
	for _, c := range cases {
		if c.field.Key != c.key {
			t.Errorf("field key = %q, want %q", c.field.Key, c.key)
		}
	}
}

func TestSetLevelString(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}
	for _, lvl := range []string{"debug", "info", "warn", "warning", "error", "", "  INFO  "} {
		if err := SetLevelString(lvl); err != nil {
			t.Errorf("SetLevelString(%q) returned error: %v", lvl, err)
		}
	}
	if err := SetLevelString("loud"); err == nil {
		t.Error("SetLevelString(\"loud\") should fail")
	}
}

func TestSync(t *testing.T) {
	if err := Sync(); err != nil {
		t.Errorf("Sync() returned error: %v", err)
	}
}
