package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
)

// DeployedAtKey is the registry field holding an entry's deployment timestamp.
const DeployedAtKey = "deployedAt"

// DeployedAtLayout renders UTC times the way JavaScript's Date.toISOString does.
const DeployedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// ChainDeployment is one chain's entry in the deployed-contracts registry.
// On disk it is a flat object: every contract role maps to its address,
// alongside the deployedAt timestamp.
type ChainDeployment struct {
	Contracts  map[string]string
	DeployedAt string
}

// NewChainDeployment records a single contract deployed at the given time.
func NewChainDeployment(role string, address common.Address, at time.Time) *ChainDeployment {
	return &ChainDeployment{
		Contracts:  map[string]string{role: address.Hex()},
		DeployedAt: FormatDeployedAt(at),
	}
}

// FormatDeployedAt formats t as an ISO-8601 UTC timestamp with millisecond precision.
func FormatDeployedAt(t time.Time) string {
	return t.UTC().Format(DeployedAtLayout)
}

// DeployedTime parses the entry's timestamp.
func (d *ChainDeployment) DeployedTime() (time.Time, error) {
	return time.Parse(time.RFC3339, d.DeployedAt)
}

// Roles returns the contract roles of the entry, sorted.
func (d *ChainDeployment) Roles() []string {
	roles := lo.Keys(d.Contracts)
	sort.Strings(roles)
	return roles
}

func (d *ChainDeployment) MarshalJSON() ([]byte, error) {
	flat := make(map[string]string, len(d.Contracts)+1)
	for role, addr := range d.Contracts {
		flat[role] = addr
	}
	if d.DeployedAt != "" {
		flat[DeployedAtKey] = d.DeployedAt
	}
	return json.Marshal(flat)
}

func (d *ChainDeployment) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Contracts = make(map[string]string)
	d.DeployedAt = ""
	for key, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			// Non-string metadata is not a contract address
			continue
		}
		if key == DeployedAtKey {
			d.DeployedAt = s
			continue
		}
		d.Contracts[key] = s
	}
	return nil
}

// Registry maps chain keys (e.g. "avalanche") to their deployments.
type Registry struct {
	Chains map[string]*ChainDeployment
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{Chains: make(map[string]*ChainDeployment)}
}

// Keys returns the chain keys of the registry, sorted.
func (r *Registry) Keys() []string {
	keys := lo.Keys(r.Chains)
	sort.Strings(keys)
	return keys
}

// Get returns the entry of a chain.
func (r *Registry) Get(chainKey string) (*ChainDeployment, bool) {
	entry, ok := r.Chains[chainKey]
	return entry, ok && entry != nil
}

// Set replaces the entry of a chain.
func (r *Registry) Set(chainKey string, entry *ChainDeployment) {
	if r.Chains == nil {
		r.Chains = make(map[string]*ChainDeployment)
	}
	r.Chains[chainKey] = entry
}

// Address looks up a deployed contract address.
func (r *Registry) Address(chainKey, role string) (common.Address, error) {
	entry, ok := r.Get(chainKey)
	if !ok {
		return common.Address{}, MissingDeploymentErr{ChainKey: chainKey, Role: role}
	}
	value, ok := entry.Contracts[role]
	if !ok || value == "" {
		return common.Address{}, MissingDeploymentErr{ChainKey: chainKey, Role: role}
	}
	addr, err := ParseAddress(value)
	if err != nil {
		return common.Address{}, fmt.Errorf("%s %s: %w", chainKey, role, err)
	}
	return addr, nil
}

func (r *Registry) MarshalJSON() ([]byte, error) {
	if r.Chains == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.Chains)
}

func (r *Registry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Chains = make(map[string]*ChainDeployment, len(raw))
	for key, value := range raw {
		// Only objects are chain entries
		if len(value) == 0 || value[0] != '{' {
			continue
		}
		var entry ChainDeployment
		if err := json.Unmarshal(value, &entry); err != nil {
			return fmt.Errorf("invalid registry entry %q: %w", key, err)
		}
		r.Chains[key] = &entry
	}
	return nil
}
