package xconfig

import (
	"fmt"
	"reflect"
)

func applyDefaultTagsRecursive(v reflect.Value) error {
	if !v.CanSet() {
		return nil
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()

		for i := 0; i < v.NumField(); i++ {
			field := v.Field(i)
			fieldType := t.Field(i)

			if !field.CanSet() {
				continue
			}

			if err := applyDefaultTag(field, fieldType); err != nil {
				return fmt.Errorf("failed to apply default tag to field %s: %w", fieldType.Name, err)
			}

			if err := applyDefaultTagsRecursive(field); err != nil {
				return err
			}
		}
	case reflect.Ptr:
		if v.IsNil() && v.Type().Elem().Kind() == reflect.Struct {
			v.Set(reflect.New(v.Type().Elem()))
		}
		if !v.IsNil() {
			return applyDefaultTagsRecursive(v.Elem())
		}
	}

	return nil
}

// callDefaultMethodsRecursive calls Default() on every addressable struct,
// outermost first.
func callDefaultMethodsRecursive(v reflect.Value) {
	if !v.CanSet() {
		return
	}

	switch v.Kind() {
	case reflect.Struct:
		if method := v.Addr().MethodByName("Default"); method.IsValid() && method.Type().NumIn() == 0 {
			method.Call(nil)
		}

		for i := 0; i < v.NumField(); i++ {
			callDefaultMethodsRecursive(v.Field(i))
		}
	case reflect.Ptr:
		if !v.IsNil() {
			callDefaultMethodsRecursive(v.Elem())
		}
	}
}

func applyDefaultTag(field reflect.Value, fieldType reflect.StructField) error {
	defaultValue, ok := fieldType.Tag.Lookup("default")
	if !ok {
		return nil
	}

	// Only apply default if field is zero value
	if !field.IsZero() {
		return nil
	}

	if field.Kind() == reflect.Slice {
		return setSliceFromString(field, defaultValue, fieldType.Name)
	}

	return setValueFromString(field, defaultValue, fieldType.Name)
}
