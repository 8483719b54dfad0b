package domain

import "time"

// Node is one SSH reachability target for the health checker.
type Node struct {
	Host  string `yaml:"host"`
	Label string `yaml:"label"`
	Port  int    `yaml:"port,omitempty"`
}

// HealthConfig holds everything the health checker needs. It is populated
// once at startup and passed into the container; nothing reads the
// environment after that.
type HealthConfig struct {
	APIHost    string
	OllamaHost string
	PGHost     string
	PGDatabase string
	PGUser     string
	Nodes      []Node
}

// SmokeConfig holds the smoke tester's resolved settings.
type SmokeConfig struct {
	Host    string
	Model   string
	Timeout time.Duration
	Quick   bool
	All     bool
}

// ModelInfo is one entry of the runtime's model list.
type ModelInfo struct {
	Name string
	Size int64
}

// Command describes a subprocess invocation for a health check.
type Command struct {
	Name     string
	Args     []string
	ExtraEnv []string
}

// CommandResult holds a finished subprocess's output and exit code.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}
