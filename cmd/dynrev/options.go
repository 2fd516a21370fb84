package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"runtime/debug"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/markdingo/dynrev/log"
	"github.com/markdingo/dynrev/pregen"
)

const (
	programName = "dynrev"

	// Uppercase HTTPS implies BuildInfo was empty
	defaultProjectURL = "HTTPS://github.com/markdingo/dynrev"

	envPrefix       = "DYNREV_"
	defaultConfig   = "dynrev.yml"
	defaultLogLevel = int(log.WarnLevel)
)

// options are the run-time settings. Defaults are overridden by DYNREV_* environment
// variables which are in turn overridden by command line options.
type options struct {
	name       string // Base name of argv[0], used in the handshake and as the syslog tag
	projectURL string

	Config    string `koanf:"config" flag:"config" validate:"required"`
	LogLevel  int    `koanf:"loglevel" flag:"loglevel" validate:"gte=1,lte=5"`
	Syslog    bool   `koanf:"syslog" flag:"syslog"`
	LogStderr bool   `koanf:"log_stderr" flag:"log-stderr"`
}

// envLoader loads DYNREV_* variables with the prefix removed and the remainder
// lowercased, thus DYNREV_LOG_STDERR sets log_stderr.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil)
}

var optionValidator = newOptionValidator()

func newOptionValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("flag")
	})

	return v
}

// newOptions returns the defaults as modified by the environment.
func newOptions() (*options, error) {
	k := koanf.New(".")
	err := k.Load(structs.Provider(options{
		Config:   defaultConfig,
		LogLevel: defaultLogLevel,
	}, "koanf"), nil)
	if err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}
	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	t := &options{name: programName, projectURL: defaultProjectURL}
	if err := k.Unmarshal("", t); err != nil {
		return nil, fmt.Errorf("error in %s environment: %w", envPrefix+"*", err)
	}
	info, ok := debug.ReadBuildInfo()
	if ok && len(info.Main.Path) > 0 {
		t.projectURL = info.Main.Path // Override with embedded if present
	}

	return t, nil
}

// setName takes the program name from argv[0].
func (t *options) setName(arg0 string) {
	if base := filepath.Base(arg0); len(base) > 0 && base != "." && base != "/" {
		t.name = base
	}
}

// validate converts validator failures into messages which name the offending option.
func (t *options) validate() error {
	err := optionValidator.Struct(t)
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		if len(fe.Param()) > 0 {
			msgs = append(msgs, fmt.Sprintf("--%s '%v' fails %s=%s",
				fe.Field(), fe.Value(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("--%s '%v' fails %s", fe.Field(), fe.Value(), fe.Tag()))
		}
	}

	return errors.New(strings.Join(msgs, ", "))
}

func (t *options) printVersion() {
	fmt.Fprintf(log.Out(), "Program:     %s %s (%s)\n",
		programName, pregen.Version, pregen.ReleaseDate)
	fmt.Fprintf(log.Out(), "Project:     %s\n", t.projectURL)
	fmt.Fprintf(log.Out(), "Protocol:    %s\n",
		"https://doc.powerdns.com/authoritative/backends/pipe.html")
}
