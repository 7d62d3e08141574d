package resolver

import (
	"fmt"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// EnvMap is an immutable snapshot of environment variables. The engine
// never reads the process environment directly; the boundary takes one
// snapshot before resolution so a run stays internally consistent.
type EnvMap map[string]string

// Lookup is the value-lookup capability injected into the resolvers.
type Lookup func(name string) (string, bool)

// Snapshot captures the current process environment.
func Snapshot() EnvMap {
	environ := os.Environ()
	env := make(EnvMap, len(environ))
	for _, kv := range environ {
		if idx := strings.IndexByte(kv, '='); idx > 0 {
			env[kv[:idx]] = kv[idx+1:]
		}
	}
	return env
}

// ReadEnvFile reads a .env file into an EnvMap. A missing file is not an
// error; it yields an empty map.
func ReadEnvFile(path string) (EnvMap, error) {
	envMap, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(EnvMap), nil
		}
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return EnvMap(envMap), nil
}

// Merge overlays other on top of e and returns the combined map. Values in
// other win, so merging the process snapshot over a .env file gives the
// "fill only keys not already set" behavior.
func (e *EnvMap) Merge(other EnvMap) (EnvMap, error) {
	env := make(EnvMap)
	if e == nil && other == nil {
		return env, nil
	}
	if e != nil {
		if err := mergo.Merge(&env, *e, mergo.WithOverride); err != nil {
			return nil, err
		}
	}
	if err := mergo.Merge(&env, other, mergo.WithOverride); err != nil {
		return nil, err
	}
	return env, nil
}

// Lookup adapts the snapshot to the injectable lookup capability.
func (e EnvMap) Lookup() Lookup {
	return func(name string) (string, bool) {
		value, ok := e[name]
		return value, ok
	}
}
