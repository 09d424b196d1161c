package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileEnvName = "VITRINA_CONFIG_FILE"
	envPrefix         = "VITRINA"
)

const (
	SourceSeed   = "seed"
	SourceRemote = "remote"
)

type catalog struct {
	Source        string        `mapstructure:"source"`
	BaseURL       string        `mapstructure:"base_url"`
	ImagesURL     string        `mapstructure:"images_url"`
	ApplicationID int64         `mapstructure:"application_id"`
	Timeout       time.Duration `mapstructure:"timeout"`
	FetchAttempts int           `mapstructure:"fetch_attempts"`
}

type whatsapp struct {
	Number string `mapstructure:"number"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	PageSize       int        `mapstructure:"page_size"`
	Catalog        catalog    `mapstructure:"catalog"`
	WhatsApp       whatsapp   `mapstructure:"whatsapp"`
}

// configKeys lists every key Unmarshal reads. Each one is bound to its
// env variable explicitly: AutomaticEnv alone leaves keys without a
// registered default invisible to Unmarshal.
var configKeys = []string{
	"log_level",
	"http_server_addr",
	"page_size",
	"catalog.source",
	"catalog.base_url",
	"catalog.images_url",
	"catalog.application_id",
	"catalog.timeout",
	"catalog.fetch_attempts",
	"whatsapp.number",
}

func Load() Config {
	_ = godotenv.Load()
	return load(getConfigFilepath())
}

func load(configFile string) Config {
	v := viper.New()

	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			die(err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			die(err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		die(err)
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", 0)
	v.SetDefault("http_server_addr", ":8080")
	v.SetDefault("page_size", 8)
	v.SetDefault("catalog.source", SourceSeed)
	v.SetDefault("catalog.timeout", 10*time.Second)
	v.SetDefault("catalog.fetch_attempts", 1)
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "", "config file")
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
	HTTPServerAddr=%q
	PageSize=%d

	Catalog:
	Source=%q
	BaseURL=%q
	ImagesURL=%q
	ApplicationID=%d
	Timeout=%q
	FetchAttempts=%d

	WhatsApp:
	Number=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.PageSize,
		c.Catalog.Source,
		c.Catalog.BaseURL,
		c.Catalog.ImagesURL,
		c.Catalog.ApplicationID,
		c.Catalog.Timeout,
		c.Catalog.FetchAttempts,
		c.WhatsApp.Number,
	)
}
