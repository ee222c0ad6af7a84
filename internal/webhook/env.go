// Package webhook parses templated webhook URLs and resolves them against
// an environment snapshot. Resolution is a pure read of the snapshot the
// caller supplies; nothing here touches the live process environment unless
// the caller snapshots it explicitly with OSEnv.
package webhook

import (
	"fmt"
	"os"
	"strings"
)

// Env is a read-only environment snapshot. Implementations must be safe for
// concurrent lookups; the engine loads one snapshot at startup and shares
// it across requests.
type Env interface {
	Lookup(name string) (string, bool)
}

// MapEnv is an Env backed by a plain map.
type MapEnv map[string]string

// Lookup implements Env.
func (e MapEnv) Lookup(name string) (string, bool) {
	v, ok := e[name]
	return v, ok
}

// OSEnv snapshots the current process environment into a MapEnv. The
// returned snapshot is owned by the caller and does not track later
// changes to the process environment.
func OSEnv() MapEnv {
	environ := os.Environ()
	env := make(MapEnv, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// Getenv returns the value of name in env, or a "not set" error.
func Getenv(env Env, name string) (string, error) {
	v, ok := env.Lookup(name)
	if !ok {
		return "", fmt.Errorf("environment variable %q is not set", name)
	}
	return v, nil
}
