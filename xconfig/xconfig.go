package xconfig

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
)

var (
	envMacroRegex = regexp.MustCompile(`\$\{env:([^}]+)\}`)
)

type Options struct {
	files     []string
	envPrefix string
	strict    bool
}

type Option func(*Options)

func WithFiles(filenames ...string) Option {
	return func(o *Options) {
		o.files = append(o.files, filenames...)
	}
}

func WithEnv(prefix string) Option {
	return func(o *Options) {
		o.envPrefix = prefix
	}
}

// WithStrict rejects unknown fields in configuration files.
func WithStrict() Option {
	return func(o *Options) {
		o.strict = true
	}
}

// Load fills config from, in order: default tags, Default() methods,
// configuration files, ${env:VAR} macros and environment variables.
func Load(config any, options ...Option) error {
	opts := &Options{}
	for _, option := range options {
		option(opts)
	}

	configElem, err := validateConfigPointer(config)
	if err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	if err := applyDefaultTagsRecursive(configElem); err != nil {
		return fmt.Errorf("failed to apply default tags: %w", err)
	}

	callDefaultMethodsRecursive(configElem)

	if len(opts.files) > 0 {
		if err := loadFromFiles(config, opts.files, opts.strict); err != nil {
			return fmt.Errorf("failed to load from files: %w", err)
		}

		expandMacrosInValue(configElem)
	}

	if opts.envPrefix != "" {
		if err := loadFromEnvRecursive(configElem, envKeyPrefix(opts.envPrefix)); err != nil {
			return fmt.Errorf("failed to load from environment: %w", err)
		}
	}

	return nil
}

func validateConfigPointer(config any) (reflect.Value, error) {
	configValue := reflect.ValueOf(config)
	if configValue.Kind() != reflect.Ptr || configValue.IsNil() {
		return reflect.Value{}, fmt.Errorf("config must be a non-nil pointer")
	}

	configElem := configValue.Elem()
	if !configElem.CanSet() {
		return reflect.Value{}, fmt.Errorf("config is not settable")
	}

	return configElem, nil
}

func expandMacros(value string) string {
	return envMacroRegex.ReplaceAllStringFunc(value, func(match string) string {
		envVar := envMacroRegex.FindStringSubmatch(match)[1]
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		// Return original if env var is not set or empty
		return match
	})
}

func expandMacrosInValue(v reflect.Value) {
	if !v.CanSet() {
		return
	}

	switch v.Kind() {
	case reflect.String:
		if v.String() != "" {
			v.SetString(expandMacros(v.String()))
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			expandMacrosInValue(v.Field(i))
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			expandMacrosInValue(v.Index(i))
		}
	case reflect.Ptr:
		if !v.IsNil() {
			expandMacrosInValue(v.Elem())
		}
	}
}
