package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ParseAgent reads an agent from "kind" or "kind:key=value,...". Keys are
// eval, p1 and p2 (asymmetric evaluation), depth and duration. The result has
// defaults applied and is validated.
func ParseAgent(def string) (AgentConfig, error) {
	var a AgentConfig
	kind, params, _ := strings.Cut(strings.TrimSpace(def), ":")
	a.Kind = kind

	var p1, p2 string
	for key, value := range splitParams(params) {
		var err error
		switch key {
		case "eval":
			a.Strategy = value
		case "p1":
			p1 = value
		case "p2":
			p2 = value
		case "depth":
			a.Depth, err = strconv.Atoi(value)
		case "duration":
			a.Duration, err = time.ParseDuration(value)
		default:
			err = errors.New("unknown parameter")
		}
		if err != nil {
			return a, errors.WithMessagef(err, "failed to parse %s=%q in agent %q", key, value, def)
		}
	}
	if p1 != "" || p2 != "" {
		a.Asymmetric = []string{p1, p2}
	}

	a.applyDefaults()
	if err := a.Validate(); err != nil {
		return a, errors.WithMessagef(err, "invalid agent %q", def)
	}
	return a, nil
}

// splitParams splits "k1=v1,k2=v2" into a map. A key without a value maps to
// the empty string.
func splitParams(params string) map[string]string {
	out := make(map[string]string)
	if params == "" {
		return out
	}
	for _, part := range strings.Split(params, ",") {
		key, value, _ := strings.Cut(part, "=")
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}
