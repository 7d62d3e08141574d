package resolver

import (
	"fmt"
	"strings"
)

// Environment selects which document section and default table apply to a
// resolution run.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// ParseEnvironment normalizes an environment name, accepting the short
// aliases used on the command line.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dev", "development":
		return Development, nil
	case "prod", "production":
		return Production, nil
	default:
		return "", fmt.Errorf("unknown environment %q: must be one of dev, development, prod, production", s)
	}
}

func (e Environment) String() string {
	return string(e)
}

func (e Environment) IsProduction() bool {
	return e == Production
}
