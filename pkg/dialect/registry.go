package dialect

import (
	"slices"
	"sync"

	"github.com/pkg/errors"
)

// DefaultName is the identifier of the built-in dialect.
const DefaultName = "default"

// ErrUnknownDialect is returned by Lookup when no dialect has been registered
// under the requested name.
var ErrUnknownDialect = errors.New("unsupported SQL dialect")

var (
	mu       sync.RWMutex
	registry = map[string]*Config{}
)

func init() {
	if err := Register(Default); err != nil {
		panic(err)
	}
}

// Register adds cfg to the registry, replacing any dialect with the same name.
func Register(cfg *Config) error {
	if cfg == nil {
		return errors.New("dialect config is nil")
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "failed to register dialect")
	}

	mu.Lock()
	defer mu.Unlock()
	registry[cfg.Name] = cfg
	return nil
}

// Lookup returns the dialect registered under name. An empty name resolves to
// the default dialect.
func Lookup(name string) (*Config, error) {
	if name == "" {
		name = DefaultName
	}

	mu.RLock()
	defer mu.RUnlock()

	cfg, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDialect, "%q", name)
	}
	return cfg, nil
}

// Names returns the sorted identifiers of all registered dialects.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
