package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envKeys maps the action's input names to config fields. Names are looked
// up both bare (local runs) and with the INPUT_ prefix GitHub Actions adds
// to workflow inputs. Anything else in the environment is ignored.
var envKeys = map[string]string{
	"GITHUB_USERNAME":               "username",
	"GITHUB_TOKEN":                  "token",
	"EVENT_LIMIT":                   "event_limit",
	"OUTPUT_STYLE":                  "output_style",
	"IGNORE_EVENTS":                 "ignore_events",
	"HIDE_DETAILS_ON_PRIVATE_REPOS": "hide_details_on_private_repos",
	"README_PATH":                   "readme_path",
	"COMMIT_MESSAGE":                "commit_message",
	"COMMIT_CHANGES":                "commit_changes",
	"GITHUB_API_URL":                "api_url",
	"LOG_LEVEL":                     "log_level",
}

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults
//  2. file (YAML) if GH_ACTIVITY_CONFIG is set
//  3. environment variables (action input names, bare or INPUT_-prefixed)
//
// The returned Config is already validated.
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("GH_ACTIVITY_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	// Map known env vars onto flat koanf keys; returning an empty key
	// drops the variable. Empty values are dropped too: the Actions
	// runner exports every declared input, supplied or not, and an empty
	// input must fall through to the default rather than clobber it.
	envProvider := env.ProviderWithValue("", ".", func(s, v string) (string, interface{}) {
		if v == "" {
			return "", nil
		}
		return envKeys[strings.TrimPrefix(s, "INPUT_")], v
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg := *defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
