package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-width", "200px", "-height", "80", "-star-count", "10", "-seed", "0"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.opts.Width != 200 || cfg.opts.Height != 80 || cfg.opts.StarCount != 10 {
		t.Fatalf("opts = %+v", cfg.opts)
	}
	if !cfg.seeded {
		t.Fatal("an explicit -seed 0 should seed the generator")
	}

	cfg, err = parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.opts.Width != 150 || cfg.opts.Height != 50 || cfg.seeded {
		t.Fatalf("defaults = %+v seeded=%v", cfg.opts, cfg.seeded)
	}

	for _, args := range [][]string{{"-width", "wide"}, {"-height", "0"}, {"-nope"}} {
		if _, err := parseFlags(args, io.Discard); err == nil {
			t.Errorf("parseFlags(%v) succeeded", args)
		}
	}
}

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "code.png")
	cfg, err := parseFlags([]string{"-seed", "3", "-o", out}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	var stdout bytes.Buffer
	if err := run(cfg, &stdout); err != nil {
		t.Fatalf("run: %v", err)
	}
	code := strings.TrimSpace(stdout.String())
	if utf8.RuneCountInString(code) != 5 {
		t.Fatalf("printed code %q", code)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}
}

func TestRunTraceIsReproducible(t *testing.T) {
	trace := func() string {
		cfg, err := parseFlags([]string{"-seed", "42", "-trace"}, io.Discard)
		if err != nil {
			t.Fatal(err)
		}
		var stdout bytes.Buffer
		if err := run(cfg, &stdout); err != nil {
			t.Fatalf("run: %v", err)
		}
		return stdout.String()
	}
	a := trace()
	if !strings.HasPrefix(a, "clearRect(0, 0, 150, 50)\n") {
		t.Fatalf("trace starts with %.40q", a)
	}
	if a != trace() {
		t.Fatal("same seed produced different traces")
	}
}
