package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const DefaultListenAddr = ":8080"
const DefaultDatabaseFilepath = "templates.db"
const DefaultMaxUploadBytes = 10 << 20

// Config is loaded in layers: defaults, then an optional YAML file named by
// CONFIG_FILEPATH, then individual environment variables. Later layers win.
type Config struct {
	ListenAddr       string `yaml:"listen_addr"`
	DatabaseFilepath string `yaml:"database_filepath"`
	MaxUploadBytes   int64  `yaml:"max_upload_bytes"`
	SendGridApiKey   string `yaml:"sendgrid_api_key"`
	EmailFrom        string `yaml:"email_from"`
}

func LoadConfig() (*Config, error) {
	config := &Config{
		ListenAddr:       DefaultListenAddr,
		DatabaseFilepath: DefaultDatabaseFilepath,
		MaxUploadBytes:   DefaultMaxUploadBytes,
	}

	if path := os.Getenv("CONFIG_FILEPATH"); path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		if err = yaml.Unmarshal(content, config); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if listenAddr := os.Getenv("LISTEN_ADDR"); listenAddr != "" {
		config.ListenAddr = listenAddr
	}
	if databaseFilepath := os.Getenv("DATABASE_FILEPATH"); databaseFilepath != "" {
		config.DatabaseFilepath = databaseFilepath
	}
	if apiKey := os.Getenv("SENDGRID_API_KEY"); apiKey != "" {
		config.SendGridApiKey = apiKey
	}
	if emailFrom := os.Getenv("EMAIL_FROM"); emailFrom != "" {
		config.EmailFrom = emailFrom
	}

	if maxUploadBytes := os.Getenv("MAX_UPLOAD_BYTES"); maxUploadBytes != "" {
		parsed, err := strconv.ParseInt(maxUploadBytes, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("MAX_UPLOAD_BYTES: %w", err)
		}
		config.MaxUploadBytes = parsed
	}

	return config, nil
}
