package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/imdario/mergo"
	"github.com/robgonnella/noip-sensor/internal/exception"
	"github.com/robgonnella/noip-sensor/internal/logger"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report yaml key names rather than go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]

		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// DeviceError describes why a configured device was rejected
type DeviceError struct {
	Index    int
	Hostname string
	Problems []string
}

func (e *DeviceError) Error() string {
	name := e.Hostname

	if name == "" {
		name = fmt.Sprintf("devices[%d]", e.Index)
	}

	return fmt.Sprintf("%s: %s", name, strings.Join(e.Problems, "; "))
}

// Unwrap allows errors.Is(err, exception.ErrInvalidConfig)
func (e *DeviceError) Unwrap() error {
	return exception.ErrInvalidConfig
}

// problem messages keyed by "<field>.<tag>"
var messages = map[string]string{
	"hostname.required":    "missing domain, need domain that will be updated",
	"username.required":    "missing your No-IP username (e-mail)",
	"username.email":       "provide a valid email",
	"password.required":    "missing your No-IP password",
	"refreshRate.min":      fmt.Sprintf("refresh rate must be at least %d seconds (30 minutes)", MinRefreshRate),
	"logging.oneof":        "logging must be one of standard, debug, none",
	"platform.refreshRate": fmt.Sprintf("platform refresh rate must be at least %d seconds (30 minutes)", MinRefreshRate),
	"platform.logging":     "platform logging must be one of standard, debug, none",
}

// Validate applies platform defaults to every device and validates it.
// It returns the devices that are safe to build pollers for, along with
// one error per rejected device. An invalid device never prevents the
// remaining devices from being returned. Validate does not mutate conf.
func Validate(conf *Config) ([]Device, []error) {
	valid := []Device{}
	errs := []error{}

	defaults := Device{
		RefreshRate: conf.RefreshRate,
		Logging:     conf.Logging,
	}

	if defaults.RefreshRate == 0 {
		defaults.RefreshRate = DefaultRefreshRate
	}

	if defaults.RefreshRate < MinRefreshRate {
		errs = append(
			errs,
			fmt.Errorf("%w: %s", exception.ErrInvalidConfig, messages["platform.refreshRate"]),
		)
		defaults.RefreshRate = DefaultRefreshRate
	}

	if err := validate.Var(string(defaults.Logging), "omitempty,oneof=standard debug none"); err != nil {
		errs = append(
			errs,
			fmt.Errorf("%w: %s", exception.ErrInvalidConfig, messages["platform.logging"]),
		)
		defaults.Logging = ""
	}

	if defaults.Logging == "" {
		defaults.Logging = logger.LevelStandard
	}

	for i, d := range conf.Devices {
		device := d

		if err := mergo.Merge(&device, defaults); err != nil {
			errs = append(errs, fmt.Errorf("devices[%d]: %w", i, err))
			continue
		}

		if problems := validateDevice(device); len(problems) > 0 {
			errs = append(errs, &DeviceError{
				Index:    i,
				Hostname: device.Hostname,
				Problems: problems,
			})
			continue
		}

		valid = append(valid, device)
	}

	return valid, errs
}

// devices marked for deletion only need a hostname to be located
func validateDevice(device Device) []string {
	if device.Delete {
		if err := validate.Var(device.Hostname, "required"); err != nil {
			return []string{messages["hostname.required"]}
		}

		return nil
	}

	err := validate.Struct(device)

	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors

	if !errors.As(err, &validationErrs) {
		return []string{err.Error()}
	}

	problems := []string{}

	for _, fe := range validationErrs {
		key := fe.Field() + "." + fe.Tag()

		if msg, ok := messages[key]; ok {
			problems = append(problems, msg)
			continue
		}

		problems = append(problems, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
	}

	return problems
}
