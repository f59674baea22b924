// Package config loads the tool settings file. Every field can still be
// overridden on the command line; the file just keeps machine-specific
// values out of shell history.
package config

import "gcodeprep/preprocess"

import "errors"
import "fmt"
import "io/fs"
import "os"

import "gopkg.in/yaml.v3"

type Config struct {
	Precision      int     `yaml:"precision"`
	SegmentLength  float64 `yaml:"segment_length"`
	MinArcLength   float64 `yaml:"min_arc_length"`
	TruncateDigits int     `yaml:"truncate_digits"`
	FeedOverride   float64 `yaml:"feed_override"`

	Device       string `yaml:"device"`
	Baud         int    `yaml:"baud"`
	WebsocketURL string `yaml:"websocket_url"`
}

func Default() Config {
	return Config{
		Precision: 4,
		Baud:      115200,
	}
}

// Load reads a settings file on top of the defaults. A missing file is not
// an error; it simply yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Settings maps the file values onto the preprocessor settings.
func (c Config) Settings() preprocess.Settings {
	return preprocess.Settings{
		Precision:      c.Precision,
		MinArcLength:   c.MinArcLength,
		SegmentLength:  c.SegmentLength,
		TruncateDigits: c.TruncateDigits,
		FeedOverride:   c.FeedOverride,
	}
}
