package assets

import (
	_ "embed"
)

// DefaultProbesYAML contains the embedded smoke-test probe catalogue.
//
//go:embed defaults/probes.yaml
var DefaultProbesYAML []byte

// DefaultNodesYAML contains the embedded SSH reachability targets.
//
//go:embed defaults/nodes.yaml
var DefaultNodesYAML []byte
