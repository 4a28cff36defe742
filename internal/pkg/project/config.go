package project

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"

	"github.com/atomic-component-engine/ace/internal/pkg/encoding/json"
	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

// InitConfig is content of the ace_config.json file in the project root.
type InitConfig struct {
	Name                 string         `json:"name"`
	Email                string         `json:"email" validate:"omitempty,email"`
	PkgName              string         `json:"pkgName"`
	IdentifiedComponents []string       `json:"identifiedComponents"`
	MixinsDir            string         `json:"mixinsDir,omitempty" validate:"omitempty,relpath"`
	Features             map[string]any `json:"features,omitempty"`
}

// Feature returns true if the feature flag is enabled, values like true, "yes", "1" are accepted.
func (c *InitConfig) Feature(name string) bool {
	v, found := c.Features[name]
	if !found {
		return false
	}
	if s, ok := v.(string); ok && (s == "yes" || s == "on") {
		return true
	}
	return cast.ToBool(v)
}

func (c *InitConfig) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("relpath", func(fl validator.FieldLevel) bool {
		return !filesystem.IsAbs(fl.Field().String())
	}); err != nil {
		return err
	}

	err := v.Struct(c)
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		errs := errors.NewMultiError()
		for _, e := range valErrs {
			switch e.Tag() {
			case "email":
				errs.Append(errors.Errorf(`"email" must be a valid email address, found "%v"`, e.Value()))
			case "relpath":
				errs.Append(errors.Errorf(`"mixinsDir" must be a relative path, found "%v"`, e.Value()))
			default:
				errs.Append(errors.Errorf(`"%s" is invalid: %s`, e.Field(), e.Tag()))
			}
		}
		return errs.ErrorOrNil()
	}
	return err
}

// LoadInitConfig reads and validates ace_config.json from the project root.
func LoadInitConfig(ctx context.Context, fs filesystem.Fs) (*InitConfig, error) {
	cfg := &InitConfig{}
	file, err := fs.ReadFile(ctx, filesystem.NewFileDef(ConfigFile).SetDescription("project config"))
	if err != nil {
		return nil, err
	}
	if err := json.DecodeString(file.Content, cfg); err != nil {
		return nil, model.ConfigParseError{Path: ConfigFile, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.PrefixErrorf(err, `project config "%s" is invalid`, ConfigFile)
	}
	return cfg, nil
}

func SaveInitConfig(ctx context.Context, fs filesystem.Fs, cfg *InitConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.IdentifiedComponents == nil {
		cfg.IdentifiedComponents = []string{}
	}
	return fs.WriteFile(ctx, filesystem.NewJSONFile(ConfigFile, cfg).SetDescription("project config"))
}
