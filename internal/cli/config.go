package cli

import (
	"errors"
	"io/fs"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/tidytree/pkg/errors"
)

// Config is the optional TOML configuration file. Every field mirrors a
// command-line flag; flags given explicitly win over file values.
//
//	separation = 4
//	strategy   = "threaded"
//	adjacency  = 1
//	ascii      = false
//
//	[glyphs]
//	node = "o"
//
//	[server]
//	addr          = ":9090"
//	cache_backend = "redis"
//	cache_url     = "redis://localhost:6379/0"
type Config struct {
	Separation int               `toml:"separation"`
	Strategy   string            `toml:"strategy"`
	Iterative  bool              `toml:"iterative"`
	Adjacency  *int              `toml:"adjacency"`
	ASCII      bool              `toml:"ascii"`
	Labels     bool              `toml:"labels"`
	Frame      bool              `toml:"frame"`
	Glyphs     map[string]string `toml:"glyphs"`
	Server     ServerConfig      `toml:"server"`
}

// ServerConfig holds settings for "tidytree serve".
type ServerConfig struct {
	Addr         string `toml:"addr"`
	CacheBackend string `toml:"cache_backend"`
	CacheURL     string `toml:"cache_url"`
}

// loadConfig reads the config file at path. An empty path selects the
// default location, which may be absent. An explicit path must exist.
// Unknown keys are rejected so that typos do not pass silently.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "read config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return Config{}, errs.New(errs.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
