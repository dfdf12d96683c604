package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
}

const (
	AuditTopic = "admin-audit"
)

// AuditEvent records a single admin mutation.
type AuditEvent struct {
	EventID string    `json:"eventId"`
	Action  string    `json:"action"`
	Entity  string    `json:"entity"`
	Key     string    `json:"key"`
	Actor   string    `json:"actor"`
	At      time.Time `json:"at"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
