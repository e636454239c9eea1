package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/LambdaTest/lcov-reporter/pkg/errs"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// storeFormats lists the artifact formats each store understands.
var storeFormats = map[string][]string{
	LocalStore: {ZipFormat, DirFormat},
	AzureStore: {FilesFormat, TzstFormat},
}

// ValidateCfg checks the validity of the config
func ValidateCfg(cfg *ReporterConfig) error {
	validate, trans, err := getValidator()
	if err != nil {
		return err
	}
	if err := validate.Struct(cfg); err != nil {
		validationErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		messages := make([]string, 0, len(validationErrs))
		for _, e := range validationErrs {
			messages = append(messages, e.Translate(trans))
		}
		return errs.ErrInvalidConfig(messages)
	}

	if _, err := cfg.Threshold(); err != nil {
		return err
	}

	allowed := storeFormats[cfg.ArtifactStore]
	for _, f := range allowed {
		if f == cfg.ArtifactFormat {
			return nil
		}
	}
	return errs.ErrInvalidConfig([]string{
		fmt.Sprintf("artifact-format %s is not supported by artifact-store %s, use one of %s",
			cfg.ArtifactFormat, cfg.ArtifactStore, strings.Join(allowed, ","))})
}

// Threshold returns the minimum coverage as a number in [0, 100].
func (c *ReporterConfig) Threshold() (float64, error) {
	threshold, err := strconv.ParseFloat(c.MinimumCoverage, 64)
	if err != nil {
		return 0, errs.ErrInvalidConfig([]string{fmt.Sprintf("minimum-coverage %q is not a number", c.MinimumCoverage)})
	}
	if threshold < 0 || threshold > 100 {
		return 0, errs.ErrInvalidConfig([]string{fmt.Sprintf("minimum-coverage %s must be between 0 and 100", c.MinimumCoverage)})
	}
	return threshold, nil
}

func getValidator() (*validator.Validate, ut.Translator, error) {
	enObj := en.New()
	uni := ut.New(enObj, enObj)
	trans, _ := uni.GetTranslator("en")
	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, err
	}
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get(tagPrefix); name != "" {
			return name
		}
		return fld.Name
	})
	return validate, trans, nil
}
