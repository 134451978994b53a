// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// FlagsFromParams creates a [pflag.FlagSet] with flags bound to the
// tagged fields of params. params must be a pointer to a struct.
// Panics on invalid input (programming error, not runtime data).
//
// Three struct tags control binding:
//
//   - flag:"name" or flag:"name,n" — the long flag name and optional
//     single-character shorthand. Fields without a flag tag are skipped.
//   - desc:"help text" — the flag's help description.
//   - default:"value" — the default, parsed per the field's Go type.
//
// Supported field types: string, bool, int, []string.
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := bindFlags(params, flagSet); err != nil {
		panic(fmt.Sprintf("cli.FlagsFromParams(%q): %v", name, err))
	}
	return flagSet
}

// bindFlags registers pflag entries for each tagged field in params.
func bindFlags(params any, flagSet *pflag.FlagSet) error {
	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}
	structValue := value.Elem()
	structType := structValue.Type()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		flagTag := field.Tag.Get("flag")
		if flagTag == "" {
			continue
		}

		name, shorthand, _ := strings.Cut(flagTag, ",")
		description := field.Tag.Get("desc")
		defaultString := field.Tag.Get("default")
		pointer := structValue.Field(i).Addr().Interface()

		switch target := pointer.(type) {
		case *string:
			flagSet.StringVarP(target, name, shorthand, defaultString, description)
		case *bool:
			defaultValue := false
			if defaultString != "" {
				parsed, err := strconv.ParseBool(defaultString)
				if err != nil {
					return fmt.Errorf("field %s: bad bool default %q", field.Name, defaultString)
				}
				defaultValue = parsed
			}
			flagSet.BoolVarP(target, name, shorthand, defaultValue, description)
		case *int:
			defaultValue := 0
			if defaultString != "" {
				parsed, err := strconv.Atoi(defaultString)
				if err != nil {
					return fmt.Errorf("field %s: bad int default %q", field.Name, defaultString)
				}
				defaultValue = parsed
			}
			flagSet.IntVarP(target, name, shorthand, defaultValue, description)
		case *[]string:
			var defaultValue []string
			if defaultString != "" {
				defaultValue = strings.Split(defaultString, ",")
			}
			flagSet.StringSliceVarP(target, name, shorthand, defaultValue, description)
		default:
			return fmt.Errorf("field %s: unsupported flag type %s", field.Name, field.Type)
		}
	}
	return nil
}
