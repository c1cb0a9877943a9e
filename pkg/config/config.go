package config

import (
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/Layr-Labs/merkletree-go/pkg/hasher"
)

const DefaultHashFunction = hasher.NameSHA256

// TreeConfig selects the digest function and logging for a tree.
type TreeConfig struct {
	// HashFunction is one of hasher.SupportedNames()
	HashFunction string `json:"hash_function" yaml:"hashFunction"`

	// Debug enables debug-level console logging
	Debug bool `json:"debug" yaml:"debug"`
}

// Default returns a config using SHA-256 with production logging.
func Default() *TreeConfig {
	return &TreeConfig{
		HashFunction: DefaultHashFunction,
	}
}

func (c *TreeConfig) Validate() error {
	var allErrors field.ErrorList
	hashPath := field.NewPath("hashFunction")
	if c.HashFunction == "" {
		allErrors = append(allErrors, field.Required(hashPath, "hashFunction is required"))
	} else if _, err := hasher.ByName(c.HashFunction); err != nil {
		allErrors = append(allErrors, field.NotSupported(hashPath, c.HashFunction, hasher.SupportedNames()))
	}
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// Hasher resolves the configured hash function.
func (c *TreeConfig) Hasher() (hasher.Hasher, error) {
	return hasher.ByName(c.HashFunction)
}
