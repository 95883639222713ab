package cli

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// loadYAML is a [kong.ConfigurationLoader] for YAML configuration files.
//
// Nested mappings are flattened by joining keys with hyphens, so both of
// these set --log-level:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Keys may use underscores in place of hyphens. Flags of a subcommand may
// be nested below the command name:
//
//	render:
//	  pretty: false
//
// Command-line flags override configuration values. An empty file yields an
// empty configuration.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	c := make(config)
	c.flatten("", doc)

	return c, nil
}

// config implements [kong.Resolver] over a flattened configuration map.
type config map[string]any

func (c config) flatten(prefix string, m map[string]any) {
	for key, value := range m {
		name := strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			name = prefix + "-" + name
		}

		switch v := value.(type) {
		case map[string]any:
			c.flatten(name, v)
		case uint64:
			c[name] = strconv.FormatUint(v, 10)
		case int64:
			c[name] = strconv.FormatInt(v, 10)
		case float64:
			c[name] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			c[name] = v
		}
	}
}

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver]. Values scoped to the selected command
// take precedence over top-level values of the same name.
func (c config) Resolve(
	_ *kong.Context,
	parent *kong.Path,
	flag *kong.Flag,
) (any, error) {
	name := strings.ReplaceAll(flag.Name, "_", "-")

	if parent != nil && parent.Command != nil {
		if v, ok := c[parent.Command.Name+"-"+name]; ok {
			return v, nil
		}
	}

	if v, ok := c[name]; ok {
		return v, nil
	}

	return nil, nil //nolint:nilnil
}
