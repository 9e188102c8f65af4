// Package yaml reads CLI configuration files written in YAML.
package yaml

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docbot"
	"gopkg.in/yaml.v3"
)

// Loader is a kong.ConfigurationLoader for YAML files.
//
// Top-level keys name flags, either as written on the command line
// ("skip-malformed") or with underscores ("skip_malformed"). A mapping
// named after a command holds flags for that command only:
//
//	log-level: info
//	lookup:
//	  policy: always
func Loader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, docbot.Errorf(docbot.EINVALID, "invalid configuration file: %v", err)
	}
	return Resolver(values), nil
}

// Resolver returns a kong.Resolver over decoded configuration values.
// Flags whose environment variable is set are left to kong, so the
// environment takes precedence over the file.
func Resolver(values map[string]any) kong.Resolver {
	var f kong.ResolverFunc = func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		for _, env := range flag.Envs {
			if _, ok := os.LookupEnv(env); ok {
				return nil, nil
			}
		}
		if parent != nil && parent.Command != nil {
			if section, ok := values[parent.Command.Name].(map[string]any); ok {
				if raw, ok := lookup(section, flag.Name); ok {
					return scalar(raw), nil
				}
			}
		}
		if raw, ok := lookup(values, flag.Name); ok {
			return scalar(raw), nil
		}
		return nil, nil
	}
	return f
}

func lookup(values map[string]any, name string) (any, bool) {
	if raw, ok := values[name]; ok {
		return raw, true
	}
	raw, ok := values[strings.ReplaceAll(name, "-", "_")]
	return raw, ok
}

// scalar renders a YAML value in the form kong parses from the command line.
func scalar(raw any) any {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return v
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}
