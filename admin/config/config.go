package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/bookmart/admin-service/pkg/kafka"
	"github.com/bookmart/admin-service/pkg/logger"
	"github.com/bookmart/admin-service/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"ADMIN_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"ADMIN_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

// Diag points at the dependent services probed by the diagnostics page.
type Diag struct {
	CatalogURL string `yaml:"catalogURL" envconfig:"DIAG_CATALOG_URL" default:"http://localhost:5000/api"`
	RecsURL    string `yaml:"recsURL" envconfig:"DIAG_RECS_URL" default:"http://localhost:4000/api"`
}

type Avatar struct {
	BaseURL string `yaml:"baseURL" envconfig:"AVATAR_BASE_URL" default:"https://ui-avatars.com/api/"`
}

type Config struct {
	Server   HTTPServer   `yaml:"server"`
	Database postgres.DB  `yaml:"db"`
	Kafka    kafka.Config `yaml:"kafka"`
	Diag     Diag         `yaml:"diag"`
	Avatar   Avatar       `yaml:"avatar"`
	Log      logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
