/*
 *  Copyright (c) 2026, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvironmentDevelopment exposes internal error details in responses.
	EnvironmentDevelopment = "development"
	// EnvironmentProduction hides internal error details.
	EnvironmentProduction = "production"
)

// Server holds the configuration parameters for the application.
type Server struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Server configurations
	Port            string        `envconfig:"PORT" default:"5000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`

	// Database configurations
	Database Database `envconfig:"DATABASE"`

	// EncryptionKey protects the linked Wazuh secret at rest.
	EncryptionKey string `envconfig:"ENCRYPTION_KEY" default:"your-32-character-ultra-secure-key!"`

	// FrontendURL is used to build links inside outgoing mail.
	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`

	SMTP      SMTP      `envconfig:"SMTP"`
	Upload    Upload    `envconfig:"UPLOAD"`
	CORS      CORS      `envconfig:"CORS"`
	Metrics   Metrics   `envconfig:"METRICS"`
	Analytics Analytics `envconfig:"ANALYTICS"`
}

// Database holds database-specific configuration
type Database struct {
	Driver string `envconfig:"DRIVER" default:"sqlite3"`
	// Path is the file path for SQLite databases.
	Path            string `envconfig:"DB_PATH" default:"./data/nexus_sentinel.db"`
	Host            string `envconfig:"HOST" default:"localhost"`
	Port            int    `envconfig:"PORT" default:"5432"`
	Name            string `envconfig:"NAME" default:"nexus_sentinel"`
	User            string `envconfig:"USER" default:""`
	Password        string `envconfig:"PASSWORD" default:""`
	SSLMode         string `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns    int    `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int    `envconfig:"MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime int    `envconfig:"CONN_MAX_LIFETIME" default:"300"` // seconds

	// ExecuteSchemaDDL controls whether the embedded schema is applied on startup.
	// Set to false when the DB user lacks DDL privileges.
	ExecuteSchemaDDL bool `envconfig:"EXECUTE_SCHEMA_DDL" default:"true"`
}

// SMTP holds outgoing mail configuration. When disabled, mail is logged instead of sent.
type SMTP struct {
	Enabled  bool   `envconfig:"ENABLED" default:"false"`
	Host     string `envconfig:"HOST" default:"smtp.gmail.com"`
	Port     int    `envconfig:"PORT" default:"587"`
	Username string `envconfig:"USERNAME" default:""`
	Password string `envconfig:"PASSWORD" default:""`
	From     string `envconfig:"FROM" default:""`
	FromName string `envconfig:"FROM_NAME" default:"Nexus Sentinel"`
	Timeout  int    `envconfig:"TIMEOUT" default:"15"` // seconds
}

// Upload holds bulk upload configuration
type Upload struct {
	Dir          string `envconfig:"DIR" default:""`
	MaxSizeBytes int64  `envconfig:"MAX_SIZE_BYTES" default:"10485760"`
}

// CORS holds cross-origin configuration for the dashboard frontend
type CORS struct {
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:3001"`
	// AllowedOriginSuffixes accepts any https origin ending with one of the suffixes (e.g. ".vercel.app").
	AllowedOriginSuffixes []string `envconfig:"ALLOWED_ORIGIN_SUFFIXES" default:".vercel.app"`
}

// Metrics holds Prometheus exposition configuration
type Metrics struct {
	Enabled bool `envconfig:"ENABLED" default:"true"`
}

// Analytics holds reporting configuration
type Analytics struct {
	Timezone string `envconfig:"TIMEZONE" default:"UTC"`
}

// IsProduction reports whether internal error details must be hidden.
func (s *Server) IsProduction() bool {
	return strings.EqualFold(s.Environment, EnvironmentProduction)
}

// Location returns the time zone used for date and hour buckets.
func (a Analytics) Location() *time.Location {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

var (
	processOnce     sync.Once
	settingInstance *Server
)

// GetConfig initializes and returns a singleton instance of the Server configuration.
// It panics if the environment cannot be processed or fails validation.
func GetConfig() *Server {
	var err error
	processOnce.Do(func() {
		settingInstance, err = Load()
	})
	if err != nil {
		panic(err)
	}
	return settingInstance
}

// Load reads a fresh configuration from the environment.
func Load() (*Server, error) {
	cfg := &Server{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Server) error {
	if strings.TrimSpace(cfg.EncryptionKey) == "" {
		return fmt.Errorf("ENCRYPTION_KEY must not be empty")
	}

	switch cfg.Database.Driver {
	case "sqlite3", "postgres", "postgresql", "pgx":
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	if cfg.SMTP.Enabled {
		if cfg.SMTP.Host == "" {
			return fmt.Errorf("SMTP is enabled but SMTP_HOST is not configured")
		}
		if cfg.SMTP.From == "" {
			return fmt.Errorf("SMTP is enabled but SMTP_FROM is not configured")
		}
	}

	if cfg.Upload.MaxSizeBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_SIZE_BYTES must be positive")
	}

	if _, err := time.LoadLocation(cfg.Analytics.Timezone); err != nil {
		return fmt.Errorf("invalid ANALYTICS_TIMEZONE %q: %w", cfg.Analytics.Timezone, err)
	}

	return nil
}
