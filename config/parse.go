package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

const tagPrefix = "viper"

// populateReporterConfig is used to parse config read through viper
func populateReporterConfig(config *ReporterConfig) (*ReporterConfig, error) {
	err := recursivelySet(reflect.ValueOf(config), "")
	if err != nil {
		return nil, err
	}

	return config, nil
}

// recursivelySet is used to recursively set conf read from
// files to golang structs. Since nested values are accessed using periods
// we need to recursively parse the values
func recursivelySet(val reflect.Value, prefix string) error {
	if val.Kind() != reflect.Ptr {
		return errors.New("config target must be a pointer")
	}

	// dereference
	val = reflect.Indirect(val)
	if val.Kind() != reflect.Struct {
		return errors.New("config target must point to a struct")
	}

	// grab the type for this instance
	vType := reflect.TypeOf(val.Interface())

	// go through child fields
	for i := 0; i < val.NumField(); i++ {
		thisField := val.Field(i)
		thisType := vType.Field(i)
		key := prefix + getTag(thisType)
		switch thisField.Kind() {
		case reflect.Struct:
			if err := recursivelySet(thisField.Addr(), key+"."); err != nil {
				return err
			}
		case reflect.Int, reflect.Int32, reflect.Int64:
			// skip the update if tag is not set in viper
			if viper.GetInt(key) == 0 && thisField.Int() != 0 {
				continue
			}
			thisField.SetInt(viper.GetInt64(key))
		case reflect.Float64:
			if viper.GetFloat64(key) == 0 && thisField.Float() != 0 {
				continue
			}
			thisField.SetFloat(viper.GetFloat64(key))
		case reflect.String:
			if viper.GetString(key) == "" && thisField.String() != "" {
				continue
			}
			thisField.SetString(viper.GetString(key))
		case reflect.Bool:
			if !viper.GetBool(key) && thisField.Bool() {
				continue
			}
			thisField.SetBool(viper.GetBool(key))
		default:
			return fmt.Errorf("unexpected type detected ~ aborting: %s", thisField.Kind())
		}
	}

	return nil
}

// getTag returns the viper key of a field, its name when untagged.
func getTag(field reflect.StructField) string {
	if v := field.Tag.Get(tagPrefix); v != "" {
		return v
	}
	return field.Name
}
