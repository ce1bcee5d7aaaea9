// Package ropeconfig loads the rope package's balancing tunables from
// YAML, so deployments can adjust coalescing and rebalancing thresholds
// without a recompile.
package ropeconfig

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coreseekdev/gorope/pkg/rope"
)

// Policy mirrors rope.Policy with yaml struct tags and zero-is-default
// semantics, so a partial YAML document only overrides the fields it
// names.
type Policy struct {
	CoalesceThreshold int `yaml:"coalesce_threshold"`
	DepthThreshold    int `yaml:"depth_threshold"`
	BalanceConstant   int `yaml:"balance_constant"`
}

// ToRope converts a loaded Policy into rope.Policy.
func (p Policy) ToRope() rope.Policy {
	return rope.Policy{
		CoalesceThreshold: p.CoalesceThreshold,
		DepthThreshold:    p.DepthThreshold,
		BalanceConstant:   p.BalanceConstant,
	}
}

// Default returns the zero Policy, which rope.Policy.toInternal resolves
// entirely to package defaults.
func Default() Policy {
	return Policy{}
}

// Load parses a Policy from r. Fields absent from the document are left
// at zero, which rope treats as "use the default for this field".
func Load(r io.Reader) (Policy, error) {
	var p Policy
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return Policy{}, nil
		}
		return Policy{}, err
	}
	return p, nil
}

// LoadFile is a convenience wrapper around Load for a path on disk.
func LoadFile(path string) (Policy, error) {
	f, err := os.Open(path)
	if err != nil {
		return Policy{}, err
	}
	defer f.Close()
	return Load(f)
}
