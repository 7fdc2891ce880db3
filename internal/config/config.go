// Package config collects the options of a generate run. Flags take their
// defaults from GOCOMBO_* environment variables, which may come from a .env
// file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv
const (
	EnvGroups   = "GOCOMBO_GROUPS"
	EnvFactors  = "GOCOMBO_FACTORS"
	EnvCode     = "GOCOMBO_CODE"
	EnvOutput   = "GOCOMBO_OUTPUT"
	EnvFormat   = "GOCOMBO_FORMAT"
	EnvWorkers  = "GOCOMBO_WORKERS"
	EnvLogLevel = "GOCOMBO_LOG_LEVEL"
)

// Options are the inputs of one expansion run
type Options struct {
	GroupsFile  string `validate:"required,file"`
	FactorsFile string `validate:"omitempty,file"`
	Code        string `validate:"required_without=FactorsFile,excluded_with=FactorsFile"`
	Output      string
	Format      string `validate:"omitempty,oneof=csv xlsx"`
	Chart       string
	Workers     int `validate:"gte=0"`
	Strict      bool
	Blank       bool
	LogLevel    string
}

// LoadEnv loads variables from the given .env files (".env" when none are
// given) without overriding variables already set. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv returns options populated from the environment
func FromEnv() (Options, error) {
	o := Options{
		GroupsFile:  os.Getenv(EnvGroups),
		FactorsFile: os.Getenv(EnvFactors),
		Code:        os.Getenv(EnvCode),
		Output:      os.Getenv(EnvOutput),
		Format:      os.Getenv(EnvFormat),
		LogLevel:    os.Getenv(EnvLogLevel),
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return o, fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		o.Workers = n
	}
	return o, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var messages = map[string]string{
	"required":         "is required",
	"required_without": "is required unless a factors file is given",
	"excluded_with":    "cannot be combined with a factors file",
	"file":             "must be an existing file",
	"oneof":            "must be one of",
	"gte":              "must not be negative",
}

// Validate checks the options and reports every problem found
func (o Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Tag()]
		if !ok {
			msg = "is invalid (" + fe.Tag() + ")"
		}
		if fe.Param() != "" && fe.Tag() == "oneof" {
			msg += " " + fe.Param()
		}
		problems = append(problems, fmt.Sprintf("%s %s", fe.Field(), msg))
	}
	return fmt.Errorf("invalid options: %s", strings.Join(problems, "; "))
}
