package xconfig

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

// EnvSkipPrefix makes WithEnv read variables without any prefix.
const EnvSkipPrefix = "-"

func envKeyPrefix(prefix string) string {
	if prefix == EnvSkipPrefix {
		return ""
	}
	return strings.ToUpper(prefix)
}

func camelToSnake(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i < len(runes)-1 && unicode.IsLower(runes[i+1])

			if !prevUpper || nextLower {
				result.WriteByte('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}

func getFieldTagName(fieldType reflect.StructField) string {
	for _, key := range []string{"env", "yaml", "json"} {
		tag := fieldType.Tag.Get(key)
		if tag == "-" {
			return ""
		}
		if tag != "" {
			return strings.Split(tag, ",")[0]
		}
	}

	return camelToSnake(fieldType.Name)
}

func loadFromEnvRecursive(v reflect.Value, prefix string) error {
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		tagName := getFieldTagName(fieldType)
		if tagName == "" {
			continue
		}

		envKey := strings.ToUpper(tagName)
		if prefix != "" {
			envKey = prefix + "_" + envKey
		}

		switch field.Kind() {
		case reflect.Struct:
			if err := loadFromEnvRecursive(field, envKey); err != nil {
				return err
			}
			continue
		case reflect.Ptr:
			if !field.IsNil() && field.Elem().Kind() == reflect.Struct {
				if err := loadFromEnvRecursive(field.Elem(), envKey); err != nil {
					return err
				}
				continue
			}
		}

		envValue, ok := os.LookupEnv(envKey)
		if !ok || envValue == "" {
			continue
		}

		var err error
		if field.Kind() == reflect.Slice {
			err = setSliceFromString(field, envValue, envKey)
		} else {
			err = setValueFromString(field, envValue, envKey)
		}

		if err != nil {
			return fmt.Errorf("failed to set field %s: %w", fieldType.Name, err)
		}
	}

	return nil
}

func parseCommaSeparated(value string) []string {
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}

func setSliceFromString(field reflect.Value, value, name string) error {
	values := parseCommaSeparated(value)
	slice := reflect.MakeSlice(field.Type(), 0, len(values))

	for _, item := range values {
		elem := reflect.New(field.Type().Elem()).Elem()
		if err := setValueFromString(elem, item, name); err != nil {
			return err
		}
		slice = reflect.Append(slice, elem)
	}

	field.Set(slice)
	return nil
}

func setValueFromString(elem reflect.Value, value, name string) error {
	switch elem.Kind() {
	case reflect.String:
		elem.SetString(value)
	case reflect.Bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value %q for %s", value, name)
		}
		elem.SetBool(val)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value %q for %s", value, name)
		}
		if elem.OverflowInt(val) {
			return fmt.Errorf("integer value %q overflows %s", value, name)
		}
		elem.SetInt(val)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid unsigned integer value %q for %s", value, name)
		}
		if elem.OverflowUint(val) {
			return fmt.Errorf("unsigned integer value %q overflows %s", value, name)
		}
		elem.SetUint(val)
	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid float value %q for %s", value, name)
		}
		elem.SetFloat(val)
	default:
		return fmt.Errorf("unsupported type %s for %s", elem.Kind(), name)
	}
	return nil
}
