package settings

import (
	"fmt"

	"aocfetch/lib/telemetry"
)

// FieldError names the offending key of a malformed settings table.
type FieldError struct {
	Key    string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Key, e.Reason)
}

func missing(key string) error {
	return &FieldError{Key: key, Reason: "is missing"}
}

func mistyped(key, want string) error {
	return &FieldError{Key: key, Reason: "must be " + want}
}

// FromTable converts a decoded TOML document into a Config.
func FromTable(table map[string]any) (Config, error) {
	raw, ok := table["configuration"]
	if !ok {
		return Config{}, missing("configuration")
	}
	section, ok := raw.(map[string]any)
	if !ok {
		return Config{}, mistyped("configuration", "a table")
	}

	var cfg Config
	var err error
	cfg.Year, err = intField(section, "configuration", "year")
	if err != nil {
		return Config{}, err
	}
	cfg.Path, err = stringField(section, "configuration", "path")
	if err != nil {
		return Config{}, err
	}
	cfg.Extension, err = stringField(section, "configuration", "extension")
	if err != nil {
		return Config{}, err
	}
	cfg.Session, err = stringField(section, "configuration", "session")
	if err != nil {
		return Config{}, err
	}

	cfg.Telemetry, err = telemetryFromTable(table)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func telemetryFromTable(table map[string]any) (telemetry.Config, error) {
	raw, ok := table["telemetry"]
	if !ok {
		return telemetry.Config{}, nil
	}
	section, ok := raw.(map[string]any)
	if !ok {
		return telemetry.Config{}, mistyped("telemetry", "a table")
	}

	var out telemetry.Config
	var err error
	out.HttpEndpoint, err = optionalStringField(section, "telemetry", "otlp_http_endpoint")
	if err != nil {
		return telemetry.Config{}, err
	}
	out.GrpcEndpoint, err = optionalStringField(section, "telemetry", "otlp_grpc_endpoint")
	if err != nil {
		return telemetry.Config{}, err
	}

	rawHeaders, ok := section["headers"]
	if !ok {
		return out, nil
	}
	headers, ok := rawHeaders.(map[string]any)
	if !ok {
		return telemetry.Config{}, mistyped("telemetry.headers", "a table")
	}
	out.Headers = make(map[string]string, len(headers))
	for name := range headers {
		out.Headers[name], err = stringField(headers, "telemetry.headers", name)
		if err != nil {
			return telemetry.Config{}, err
		}
	}
	return out, nil
}

func intField(section map[string]any, prefix, name string) (int, error) {
	key := prefix + "." + name
	raw, ok := section[name]
	if !ok {
		return 0, missing(key)
	}
	value, ok := raw.(int64)
	if !ok {
		return 0, mistyped(key, "an integer")
	}
	return int(value), nil
}

func stringField(section map[string]any, prefix, name string) (string, error) {
	key := prefix + "." + name
	raw, ok := section[name]
	if !ok {
		return "", missing(key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", mistyped(key, "a string")
	}
	return value, nil
}

func optionalStringField(section map[string]any, prefix, name string) (string, error) {
	if _, ok := section[name]; !ok {
		return "", nil
	}
	return stringField(section, prefix, name)
}
