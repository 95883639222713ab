package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
)

func TestLoadYAML_Flatten(t *testing.T) {
	r, err := loadYAML(strings.NewReader(`
log:
  level: debug
  time_layout: Kitchen
log-caller: true
render:
  indent: 2
  ratio: 1.5
`))
	if err != nil {
		t.Fatal(err)
	}

	want := config{
		"log-level":       "debug",
		"log-time-layout": "Kitchen",
		"log-caller":      true,
		"render-indent":   "2",
		"render-ratio":    "1.5",
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("loadYAML() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML_Empty(t *testing.T) {
	r, err := loadYAML(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(config{}, r); diff != "" {
		t.Errorf("loadYAML() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML_Malformed(t *testing.T) {
	if _, err := loadYAML(strings.NewReader("log: [")); err == nil {
		t.Error("loadYAML() succeeded on malformed input")
	}
}

func TestConfig_Resolve(t *testing.T) {
	var cli struct {
		Level string `default:"info" name:"log-level"`
		Color bool   `default:"true" negatable:""`

		Render struct {
			Pretty bool `default:"true" negatable:""`
			Indent int  `default:"0"`
		} `cmd:""`
	}

	r, err := loadYAML(strings.NewReader(`
log_level: warn
color: false
pretty: false
render:
  indent: 3
`))
	if err != nil {
		t.Fatal(err)
	}

	parser, err := kong.New(&cli, kong.Resolvers(r))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse([]string{"render", "--pretty"}); err != nil {
		t.Fatal(err)
	}

	if cli.Level != "warn" {
		t.Errorf("Level = %q, want %q", cli.Level, "warn")
	}

	if cli.Color {
		t.Error("Color = true, want false from configuration")
	}

	if !cli.Render.Pretty {
		t.Error("render Pretty = false, want true from command line")
	}

	if cli.Render.Indent != 3 {
		t.Errorf("render Indent = %d, want 3", cli.Render.Indent)
	}
}
