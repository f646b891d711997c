package hhts

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultConfigFile is looked for in the working directory when no
// --config flag is given. Its absence is not an error.
const DefaultConfigFile = "hhts.yaml"

// Config holds every knob of a run. Keys match the command line flag
// names, so a YAML file and the flags describe the same surface; flags
// that were set explicitly win over the file.
type Config struct {
	SdrtsDir     string   `koanf:"sdrts-dir"`
	AtDir        string   `koanf:"at-dir"`
	Out          string   `koanf:"out"`
	CSVOut       string   `koanf:"csv-out"`
	ClipBoundary string   `koanf:"clip-boundary"`
	Tables       []string `koanf:"tables"`
	Frequencies  bool     `koanf:"frequencies"`
	SRID         int      `koanf:"srid"`
}

// LoadConfig layers the YAML config file under the given flag set. An
// explicitly named file must exist; the default file is optional.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("merge flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.SRID == 0 {
		cfg.SRID = 2230
	}
	return &cfg, nil
}
