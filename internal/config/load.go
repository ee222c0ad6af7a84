package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"crossdb-graphql/internal/primitive"
	"crossdb-graphql/internal/webhook"
)

var defineFlagsOnce sync.Once

// Load loads configuration with the following precedence:
// 1. Command line flags
// 2. Environment variables (CDBQL_ prefix)
// 3. Config file
// 4. Default values
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	defineFlags()
	if !pflag.Parsed() {
		pflag.Parse()
	}

	cfgPath, _ := pflag.CommandLine.GetString("config")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.SetConfigName("crossdb-graphql")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/crossdb-graphql/")
		v.AddConfigPath("$HOME/.crossdb-graphql")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgPath != "" {
			return nil, fmt.Errorf("failed to read config file %q: %w", cfgPath, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("CDBQL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeOption()); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg.InstanceID = uuid.New()
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("auth.webhook_timeout", primitive.DefaultTimeoutSeconds)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("sql_generation.stringify_numerics", false)
	v.SetDefault("sql_generation.dangerous_boolean_collapse", false)
}

// decodeOption wires the decode hooks the configuration format needs:
// duration strings, text-unmarshaling value types, webhook URL forms, and
// integer-second timeouts.
func decodeOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
			urlConfHookFunc(),
			timeoutHookFunc(),
		),
	)
}

func defineFlags() {
	defineFlagsOnce.Do(func() {
		pflag.String("config", "", "Path to configuration file")
	})
}

// urlConfHookFunc decodes webhook URL configuration from either a plain
// string (a literal/templated URL) or a map with a single from_env key,
// matching the JSON wire form.
func urlConfHookFunc() mapstructure.DecodeHookFunc {
	urlConfType := reflect.TypeOf(webhook.URLConf{})
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != urlConfType {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			parsed, err := webhook.ParseInputWebhook(v)
			if err != nil {
				return nil, err
			}
			return webhook.URLFromWebhook(parsed), nil
		case map[string]interface{}:
			name, ok := v["from_env"].(string)
			if !ok || name == "" || len(v) != 1 {
				return nil, fmt.Errorf("expecting a URL string or an object with a single 'from_env' key")
			}
			return webhook.URLFromEnv(name), nil
		default:
			return data, nil
		}
	}
}

// timeoutHookFunc decodes integer seconds into a validated Timeout.
func timeoutHookFunc() mapstructure.DecodeHookFunc {
	timeoutType := reflect.TypeOf(primitive.Timeout{})
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != timeoutType {
			return data, nil
		}
		var seconds int
		switch v := data.(type) {
		case int:
			seconds = v
		case int64:
			seconds = int(v)
		case float64:
			if v != float64(int(v)) {
				return nil, fmt.Errorf("timeout must be a whole number of seconds, got %v", v)
			}
			seconds = int(v)
		default:
			return data, nil
		}
		return primitive.NewTimeout(seconds)
	}
}
