package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestNew_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	c, err := New(v)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	want := Config{
		Rows:      27000,
		PWM:       "consensus.txt",
		PosOut:    "arab_TISrand.pos",
		NegOut:    "arab_TISrand.neg",
		Length:    150,
		MotifSpan: 10,
		Format:    "lines",
	}
	if c != want {
		t.Errorf("New() = %+v, want %+v", c, want)
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := "rows: 12\nlength: 99\nmotif-span: 4\nseed: 5\ngzip: true\npos-out: a.pos\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatal(err)
	}

	c, err := New(v)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"rows", c.Rows, 12},
		{"length", c.Length, 99},
		{"motif-span", c.MotifSpan, 4},
		{"seed", c.Seed, int64(5)},
		{"gzip", c.Gzip, true},
		{"pos-out", c.PosOut, "a.pos"},
		{"neg-out", c.NegOut, "arab_TISrand.neg"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	p := c.Params()
	if p.Rows != 12 || p.PosPath != "a.pos" || p.Length != 99 || !p.Gzip {
		t.Errorf("Params() = %+v", p)
	}
}
