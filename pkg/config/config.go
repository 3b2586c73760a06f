package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/edgeflare/keyspace/pkg/charset"
	"github.com/edgeflare/keyspace/pkg/keyspace"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Version is set at build time.
var Version = "dev"

// EnvPrefix prefixes environment overrides, e.g. KEYSPACE_GENERATE_LENGTH.
const EnvPrefix = "KEYSPACE"

// Config holds application-wide configuration
type Config struct {
	LogLevel    string          `mapstructure:"logLevel"`
	MetricsFile string          `mapstructure:"metricsFile"`
	Generate    GenerateConfig  `mapstructure:"generate"`
	Enumerate   EnumerateConfig `mapstructure:"enumerate"`
	Wordlist    WordlistConfig  `mapstructure:"wordlist"`
}

type GenerateConfig struct {
	Length  int             `mapstructure:"length"`
	Count   int             `mapstructure:"count"`
	Charset charset.Charset `mapstructure:"charset"`
}

// EnumerateConfig is shared by the enumerate and size commands. MaxLen is
// exclusive.
type EnumerateConfig struct {
	MinLen  int             `mapstructure:"minLen"`
	MaxLen  int             `mapstructure:"maxLen"`
	Charset charset.Charset `mapstructure:"charset"`
	Mode    string          `mapstructure:"mode"`
	Limit   int             `mapstructure:"limit"`
}

type WordlistConfig struct {
	Path   string `mapstructure:"path"`
	Buffer int    `mapstructure:"buffer"`
}

// Defaults returns the settings used when neither file, env nor flags set a
// value.
func Defaults() map[string]any {
	return map[string]any{
		"logLevel":          "info",
		"metricsFile":       "",
		"generate.length":   keyspace.DefaultPasswordLength,
		"generate.count":    1,
		"generate.charset":  charset.Default,
		"enumerate.minLen":  4,
		"enumerate.maxLen":  5,
		"enumerate.charset": charset.Default,
		"enumerate.mode":    keyspace.ModeCombinations.String(),
		"enumerate.limit":   0,
		"wordlist.path":     "",
		"wordlist.buffer":   1000,
	}
}

// Load reads config from file, environment and any flags bound to v. A nil v
// uses a fresh viper instance. It returns the config file used, if any.
func Load(v *viper.Viper, cfgFile string) (*Config, string, error) {
	if v == nil {
		v = viper.New()
	}

	for key, val := range Defaults() {
		v.SetDefault(key, val)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("keyspace")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config"))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(CharsetHookFunc())); err != nil {
		return nil, used, fmt.Errorf("unable to decode config: %w", keyspace.TypeError("config", err))
	}

	return &cfg, used, nil
}

var charsetType = reflect.TypeOf(charset.Charset(nil))

// CharsetHookFunc decodes preset names, literal strings and lists of
// single-character strings into a charset.Charset.
func CharsetHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != charsetType {
			return data, nil
		}

		switch d := data.(type) {
		case nil, charset.Charset:
			return data, nil
		case string:
			return keyspace.ParseCharset(d)
		case []string:
			return keyspace.CharsetFromStrings(d)
		case []any:
			elems := make([]string, len(d))
			for i, e := range d {
				s, ok := e.(string)
				if !ok {
					return nil, keyspace.TypeError("charset", fmt.Errorf("element %d is %T, not a string", i, e))
				}
				elems[i] = s
			}
			return keyspace.CharsetFromStrings(elems)
		default:
			return nil, keyspace.TypeError("charset", fmt.Errorf("unsupported %s value", f))
		}
	}
}
