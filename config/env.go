package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// loadFromEnvironment fills config from environment variables by walking the
// struct tags: `env` names the variable, `default` supplies the fallback.
func loadFromEnvironment(config *Config) error {
	return walkFields(reflect.ValueOf(config).Elem())
}

func walkFields(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := walkFields(field); err != nil {
				return err
			}
			continue
		}

		tag := t.Field(i).Tag
		envName := tag.Get("env")
		if envName == "" {
			continue
		}

		raw := os.Getenv(envName)
		if raw == "" {
			raw = tag.Get("default")
		}
		if raw == "" {
			continue
		}

		if err := assignField(field, raw, envName); err != nil {
			return err
		}
	}

	return nil
}

func assignField(field reflect.Value, raw, envName string) error {
	switch {
	case field.Kind() == reflect.String:
		field.SetString(raw)

	case field.Kind() == reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s: %q is not a boolean", envName, raw)
		}
		field.SetBool(b)

	case field.Type() == durationType:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("%s: %q is not a duration", envName, raw)
		}
		field.SetInt(int64(d))

	case field.Kind() == reflect.Int || field.Kind() == reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", envName, raw)
		}
		field.SetInt(n)

	default:
		return fmt.Errorf("%s: unsupported field kind %s", envName, field.Kind())
	}

	return nil
}
