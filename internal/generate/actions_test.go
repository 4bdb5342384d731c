package generate

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/businessdatasolutions/beat-generator/pkg/generator"
	"github.com/businessdatasolutions/beat-generator/pkg/parsers"
	"github.com/urfave/cli/v2"
)

func testContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("beatgen", flag.ContinueOnError)
	set.String("config", "", "")
	set.String("output-dir", "", "")
	set.Bool("quiet", false, "")
	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}
	return cli.NewContext(cli.NewApp(), set, nil)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestLoadConfigDefaults(t *testing.T) {
	c := testContext(t, "-config", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg := loadConfig(c, discardLogger())
	if cfg == nil {
		t.Fatal("loadConfig() returned nil")
	}
	if cfg.OutputDir != "beats" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "beats")
	}
}

func TestLoadConfigOutputDirOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "beatgen.yaml")
	if err := os.WriteFile(cfgPath, []byte("output_dir: /from/file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c := testContext(t, "-config", cfgPath, "-output-dir", "/from/flag")
	cfg := loadConfig(c, discardLogger())
	if cfg.OutputDir != "/from/flag" {
		t.Errorf("OutputDir = %q, want the flag to win", cfg.OutputDir)
	}
}

func TestResolveOutputName(t *testing.T) {
	prep := &generator.Preparation{
		Source: parsers.ParseContent("# Mijn Eerste Beat\n\ntekst", "bron.md"),
	}

	tests := []struct {
		requested string
		want      string
	}{
		{"custom-name", "custom-name"},
		{"", "mijn-eerste-beat"},
		{"Not A Slug", "not-a-slug"},
	}
	for _, tt := range tests {
		if got := resolveOutputName(tt.requested, prep); got != tt.want {
			t.Errorf("resolveOutputName(%q) = %q, want %q", tt.requested, got, tt.want)
		}
	}
}
