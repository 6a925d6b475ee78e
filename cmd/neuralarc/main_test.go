package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/gommon/log"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestContentCommands(t *testing.T) {
	out := run(t, "content", "check")
	if !strings.HasPrefix(out, "ok: ") {
		t.Errorf("content check = %q", out)
	}

	out = run(t, "content", "list", "services")
	if !strings.Contains(strings.ToUpper(out), "TITLE") {
		t.Errorf("services table missing header:\n%s", out)
	}
}

func TestOGCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "og.png")
	run(t, "og", "-o", path, "--width", "300")

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Lvl{
		"debug": log.DEBUG,
		"WARN":  log.WARN,
		"error": log.ERROR,
		"off":   log.OFF,
		"":      log.INFO,
		"bogus": log.INFO,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
