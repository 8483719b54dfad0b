// Package config resolves tool configuration from the environment. Both
// tools read their settings exactly once at startup; the resulting structs
// are passed by value into the container.
package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kagebunshin/kbdiag/assets"
	"github.com/kagebunshin/kbdiag/internal/domain"
)

const (
	defaultAPIHost    = "http://localhost:8000"
	defaultOllamaHost = "http://localhost:11434"
	defaultPGHost     = "localhost"
	defaultPGDatabase = "claude_memory"
	defaultPGUser     = "claude_mcp"
	defaultSSHPort    = 22
	defaultGenTimeout = 60 * time.Second
	defaultSmokeModel = "deepseek-coder:33b"
)

// LoadHealth builds the health checker configuration from the environment
// plus the embedded node list.
func LoadHealth() (domain.HealthConfig, error) {
	nodes, err := loadNodes()
	if err != nil {
		return domain.HealthConfig{}, err
	}
	return domain.HealthConfig{
		APIHost:    getenv("KB_API_HOST", defaultAPIHost),
		OllamaHost: getenv("OLLAMA_HOST", defaultOllamaHost),
		PGHost:     getenv("PG_HOST", defaultPGHost),
		PGDatabase: getenv("PG_DATABASE", defaultPGDatabase),
		PGUser:     getenv("PG_USER", defaultPGUser),
		Nodes:      nodes,
	}, nil
}

// SmokeOverrides carries flag values that take precedence over the
// environment. TimeoutSet distinguishes an explicit --timeout from the flag
// default so OLLAMA_TIMEOUT can still apply.
type SmokeOverrides struct {
	Host       string
	Model      string
	Timeout    time.Duration
	TimeoutSet bool
	Quick      bool
	All        bool
}

// LoadSmoke resolves the smoke tester configuration: explicit flags, then
// environment, then defaults.
func LoadSmoke(overrides SmokeOverrides) domain.SmokeConfig {
	cfg := domain.SmokeConfig{
		Host:    overrides.Host,
		Model:   overrides.Model,
		Timeout: overrides.Timeout,
		Quick:   overrides.Quick,
		All:     overrides.All,
	}
	if cfg.Host == "" {
		cfg.Host = getenv("OLLAMA_HOST", defaultOllamaHost)
	}
	if cfg.Model == "" {
		cfg.Model = defaultSmokeModel
	}
	if !overrides.TimeoutSet {
		cfg.Timeout = envTimeout()
	}
	return cfg
}

func envTimeout() time.Duration {
	if raw := os.Getenv("OLLAMA_TIMEOUT"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultGenTimeout
}

func loadNodes() ([]domain.Node, error) {
	var doc struct {
		Nodes []domain.Node `yaml:"nodes"`
	}
	if err := yaml.Unmarshal(assets.DefaultNodesYAML, &doc); err != nil {
		return nil, err
	}
	for i := range doc.Nodes {
		if doc.Nodes[i].Port == 0 {
			doc.Nodes[i].Port = defaultSSHPort
		}
	}
	return doc.Nodes, nil
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
