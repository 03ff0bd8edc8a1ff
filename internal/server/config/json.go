package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophwallet/internal/flagx"
	"github.com/dmitrijs2005/gophwallet/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Every field is optional: absent
// keys leave the current value alone. Durations accept "1m30s" strings or
// integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP             *string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC             *string         `json:"endpoint_addr_grpc"`
	Storage                      *string         `json:"storage"`
	DatabaseDSN                  *string         `json:"database_dsn"`
	MongoURI                     *string         `json:"mongo_uri"`
	MongoDatabase                *string         `json:"mongo_database"`
	SecretKey                    *string         `json:"secret_key"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration"`
	BcryptCost                   *int            `json:"bcrypt_cost"`
	TransferTimeout              *timex.Duration `json:"transfer_timeout"`
	TransferMaxRetries           *uint64         `json:"transfer_max_retries"`
	SignupBalance                *int64          `json:"signup_balance"`
	NatsURL                      *string         `json:"nats_url"`
	NatsSubject                  *string         `json:"nats_subject"`
	LogLevel                     *string         `json:"log_level"`
}

// parseJson overlays the JSON file passed with -c or -config, if any.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	set(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	set(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	set(&config.Storage, c.Storage)
	set(&config.DatabaseDSN, c.DatabaseDSN)
	set(&config.MongoURI, c.MongoURI)
	set(&config.MongoDatabase, c.MongoDatabase)
	set(&config.SecretKey, c.SecretKey)
	set(&config.BcryptCost, c.BcryptCost)
	set(&config.TransferMaxRetries, c.TransferMaxRetries)
	set(&config.SignupBalance, c.SignupBalance)
	set(&config.NatsURL, c.NatsURL)
	set(&config.NatsSubject, c.NatsSubject)
	set(&config.LogLevel, c.LogLevel)

	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration != nil {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.TransferTimeout != nil {
		config.TransferTimeout = c.TransferTimeout.Duration
	}
	return nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
