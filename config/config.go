// Package config is for run wide settings that are unmarshalled from Viper
// (see: /cmd), either from flags, a YAML settings file or TIS_ prefixed
// environment variables.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"synthetic_tis/tis_gen"
)

// Config is the settings of one generate run.
type Config struct {
	// number of positive/negative pairs to write
	Rows int `mapstructure:"rows"`

	// path to the position weight matrix
	PWM string `mapstructure:"pwm"`

	// output corpora
	PosOut string `mapstructure:"pos-out"`
	NegOut string `mapstructure:"neg-out"`

	// bases on either side of the start codon, a multiple of 3
	Length int `mapstructure:"length"`

	// consensus half-span around the start codon
	MotifSpan int `mapstructure:"motif-span"`

	// 0 seeds from the clock
	Seed int64 `mapstructure:"seed"`

	// "lines" or "fasta"
	Format string `mapstructure:"format"`

	Gzip bool `mapstructure:"gzip"`
}

// Defaults for every key.
var Defaults = map[string]interface{}{
	"rows":       27000,
	"pwm":        "consensus.txt",
	"pos-out":    "arab_TISrand.pos",
	"neg-out":    "arab_TISrand.neg",
	"length":     150,
	"motif-span": 10,
	"seed":       0,
	"format":     "lines",
	"gzip":       false,
}

// SetDefaults registers Defaults on v.
func SetDefaults(v *viper.Viper) {
	for k, val := range Defaults {
		v.SetDefault(k, val)
	}
}

// New decodes the settings held by v into a Config.
func New(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return c, nil
}

// Params converts c into generator parameters.
func (c Config) Params() tis_gen.Params {
	return tis_gen.Params{
		Rows:      c.Rows,
		PWMPath:   c.PWM,
		PosPath:   c.PosOut,
		NegPath:   c.NegOut,
		Length:    c.Length,
		MotifSpan: c.MotifSpan,
		Seed:      c.Seed,
		Format:    c.Format,
		Gzip:      c.Gzip,
	}
}
