package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

const envProduction = "production"

type api struct {
	Environment    string `mapstructure:"environment"`
	ProductionURL  string `mapstructure:"production_url"`
	DevelopmentURL string `mapstructure:"development_url"`
}

type Config struct {
	LogLevel     slog.Level `mapstructure:"log_level"`
	API          api        `mapstructure:"api"`
	SnapshotPath string     `mapstructure:"snapshot_path"`
	StoreDB      string     `mapstructure:"store_db"`
}

// BaseURL selects the remote API host for the build environment.
func (c Config) BaseURL() string {
	if strings.EqualFold(c.API.Environment, envProduction) {
		return c.API.ProductionURL
	}
	return c.API.DevelopmentURL
}

func Load() Config {
	_ = godotenv.Load()

	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	if env, ok := os.LookupEnv("STOREFRONT_ENV"); ok {
		cfg.API.Environment = env
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	SnapshotPath=%q
	StoreDB=%q

	API:
	Environment=%q
	ProductionURL=%q
	DevelopmentURL=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.SnapshotPath,
		c.StoreDB,
		c.API.Environment,
		c.API.ProductionURL,
		c.API.DevelopmentURL,
	)
}
