package config

import (
	"github.com/pkg/errors"

	"github.com/bigredeye/gradebook/pkg/conf"
	zlog "github.com/bigredeye/gradebook/pkg/log"
)

const DefaultDataFile = "grades.json"

type Config struct {
	DataFile string

	Log zlog.Options
}

var defaults = map[string]interface{}{
	"DataFile":       DefaultDataFile,
	"Log.Level":      "info",
	"Log.MaxSizeMB":  10,
	"Log.MaxBackups": 3,
	"Log.MaxAgeDays": 28,
}

func ParseConfig(path string) (*Config, error) {
	config := &Config{}
	err := conf.ParseConfig(config,
		conf.EnvPrefix("GRADEBOOK"),
		conf.File(path),
		conf.Defaults(defaults),
	)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to parse config")
	}
	return config, nil
}
