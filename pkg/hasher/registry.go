package hasher

import (
	"sort"

	"github.com/pkg/errors"
)

// Names accepted by ByName.
const (
	NameSHA256     = "sha256"
	NameKeccak256  = "keccak256"
	NameSHA3_256   = "sha3-256"
	NameBlake2b256 = "blake2b-256"
)

// ErrUnknownHashFunction is returned by ByName for names it does not recognise.
var ErrUnknownHashFunction = errors.New("unknown hash function")

var registry = map[string]Hasher{
	NameSHA256:     SHA256{},
	NameKeccak256:  Keccak256{},
	NameSHA3_256:   SHA3_256{},
	NameBlake2b256: Blake2b256{},
}

// ByName resolves a configured hash function name.
func ByName(name string) (Hasher, error) {
	h, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHashFunction, "%q", name)
	}
	return h, nil
}

// SupportedNames returns every name ByName accepts, sorted.
func SupportedNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
