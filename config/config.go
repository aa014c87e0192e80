// Package config loads settings structs from the environment, and optionally
// from a file, using viper.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/a-peyrard/godeco/option"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type (
	Options struct {
		prefix     string
		configFile string
	}

	// WithDefault is implemented by settings structs filling their own zero fields.
	WithDefault interface {
		ApplyDefault()
	}
)

func WithEnvPrefix(prefix string) option.Option[Options] {
	return func(opts *Options) {
		opts.prefix = prefix
	}
}

// WithConfigFile reads the given file before the environment is applied. The
// format is deduced from the extension (yaml, json, toml...).
func WithConfigFile(path string) option.Option[Options] {
	return func(opts *Options) {
		opts.configFile = path
	}
}

// Load builds a T from the environment. Keys come from the `mapstructure` tags,
// upper-cased, nested with "_" and prefixed by the env prefix. Nil nested struct
// pointers are allocated, ApplyDefault is called on every struct implementing
// WithDefault (parents before children) and the result is validated against its
// `validate` tags.
func Load[T any](opts ...option.Option[Options]) (*T, error) {
	options := option.Build(&Options{}, opts...)

	v := viper.New()
	v.SetEnvPrefix(options.prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if options.configFile != "" {
		v.SetConfigFile(options.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file %s: %w", options.configFile, err)
		}
	}

	var vT T
	bindEnvs(v, options.prefix, reflect.TypeOf(vT))

	if err := v.Unmarshal(&vT); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	walkDefaults(reflect.ValueOf(&vT))

	if err := validate(&vT); err != nil {
		return nil, err
	}

	return &vT, nil
}

func bindEnvs(v *viper.Viper, envPrefix string, typ reflect.Type, parts ...string) {
	if typ == nil || typ.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		tag, ok := field.Tag.Lookup("mapstructure")
		if !ok {
			tag = field.Name
		}
		tag = strings.Split(tag, ",")[0]

		fieldType := field.Type
		if fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}
		if fieldType.Kind() == reflect.Struct {
			bindEnvs(v, envPrefix, fieldType, append(parts, tag)...)
			continue
		}

		key := strings.Join(append(parts, tag), ".")
		envParts := make([]string, 0, len(parts)+1)
		for _, part := range append(parts, tag) {
			envParts = append(envParts, toEnvName(part))
		}
		_ = v.BindEnv(key, mergeWithEnvPrefix(envPrefix, strings.Join(envParts, "_")))
	}
}

func mergeWithEnvPrefix(envPrefix string, in string) string {
	if envPrefix != "" {
		return strings.ToUpper(envPrefix + "_" + in)
	}

	return strings.ToUpper(in)
}

func walkDefaults(val reflect.Value) {
	switch val.Kind() {
	case reflect.Pointer:
		if val.IsNil() {
			if !val.CanSet() || val.Type().Elem().Kind() != reflect.Struct {
				return
			}
			val.Set(reflect.New(val.Type().Elem()))
		}
		walkDefaults(val.Elem())
	case reflect.Struct:
		if val.CanAddr() {
			if withDefault, ok := val.Addr().Interface().(WithDefault); ok {
				withDefault.ApplyDefault()
			}
		}
		typ := val.Type()
		for i := 0; i < typ.NumField(); i++ {
			if typ.Field(i).IsExported() {
				walkDefaults(val.Field(i))
			}
		}
	}
}

func validate(conf any) error {
	if reflect.Indirect(reflect.ValueOf(conf)).Kind() != reflect.Struct {
		return nil
	}

	err := validator.New(validator.WithRequiredStructEnabled()).Struct(conf)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("unable to validate config: %w", err)
	}
	failed := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		failed = append(failed, fmt.Sprintf("%s: %s", fieldErr.Namespace(), rule))
	}
	return fmt.Errorf("invalid config, failed fields [%s]: %w", strings.Join(failed, ", "), err)
}
