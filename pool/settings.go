package pool

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/markdingo/dynrev/config"
	"github.com/markdingo/dynrev/log"
)

// Configuration keys as they appear in the file.
const (
	KeyDomain     = "domain"
	KeyForward    = "forward"
	KeyPrefix     = "prefix"
	KeyPostfix    = "postfix"
	KeyTTL        = "ttl"
	KeyNameserver = "nameserver"
	KeyDNS        = "dns"
	KeyEmail      = "email"
)

var (
	ErrMissingField = errors.New("required field missing")
	ErrInvalidField = errors.New("invalid field value")
)

// settings is the typed result of merging the defaults with one prefix's overrides. The
// key tag names the configuration key and is used in error messages.
type settings struct {
	Domain     string   `key:"domain" validate:"presentable"`
	Forward    string   `key:"forward" validate:"required,presentable"`
	Prefix     string   `key:"prefix" validate:"presentable"`
	Postfix    string   `key:"postfix" validate:"presentable"`
	TTL        *int64   `key:"ttl" validate:"required,gte=0,lte=2147483647"`
	Nameserver []string `key:"nameserver" validate:"required,min=1,dive,required,presentable"`
	DNS        string   `key:"dns" validate:"required,presentable"`
	Email      string   `key:"email" validate:"required,presentable"`
}

// escapedChars are printable characters which miekg/dns escapes with a backslash when
// presenting a name. Names containing them, or any non-printable, would not appear in
// DATA lines as configured.
const escapedChars = " '@;()\"\\"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("key")
	})
	if err := v.RegisterValidation("presentable", presentable); err != nil {
		panic(err)
	}

	return v
}

// presentable is true if the name is emitted verbatim in presentation format.
func presentable(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	for ix := 0; ix < len(s); ix++ {
		c := s[ix]
		if c <= ' ' || c > '~' || strings.IndexByte(escapedChars, c) >= 0 {
			return false
		}
	}

	return true
}

// merge is the two-stage fallback: a value in overrides beats a value in defaults. An
// explicit null override is treated as absent and so falls back. The result is a new map
// so neither input is modified.
func merge(defaults, overrides config.Fields) config.Fields {
	m := make(config.Fields, len(defaults)+len(overrides))
	for k, v := range defaults {
		m[k] = v
	}
	for k, v := range overrides {
		if v != nil {
			m[k] = v
		}
	}

	return m
}

// resolve merges then converts and validates the result. Unknown keys are warned about
// rather than rejected as they are most likely harmless typos in optional settings.
func resolve(defaults, overrides config.Fields) (*settings, error) {
	m := merge(defaults, overrides)
	s := &settings{}

	var errs []string
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys) // For deterministic error messages

	for _, k := range keys {
		v := m[k]
		if v == nil { // A null default
			continue
		}
		var err error
		switch k {
		case KeyDomain:
			s.Domain, err = asString(v)
		case KeyForward:
			s.Forward, err = asString(v)
		case KeyPrefix:
			s.Prefix, err = asString(v)
		case KeyPostfix:
			s.Postfix, err = asString(v)
		case KeyTTL:
			var ttl int64
			ttl, err = asInt(v)
			s.TTL = &ttl
		case KeyNameserver:
			s.Nameserver, err = asStrings(v)
		case KeyDNS:
			s.DNS, err = asString(v)
		case KeyEmail:
			s.Email, err = asString(v)
		default:
			log.Warnf("Ignoring unknown configuration key '%s'", k)
		}
		if err != nil {
			errs = append(errs, k+": "+err.Error())
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidField, strings.Join(errs, ", "))
	}

	err := validate.Struct(s)
	if err == nil {
		return s, nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil, err
	}
	var missing, invalid []string
	for _, fe := range vErrs {
		switch fe.Tag() {
		case "required", "min":
			missing = append(missing, fe.Field())
		default:
			invalid = append(invalid, fmt.Sprintf("%s '%v'", fe.Field(), fe.Value()))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidField, strings.Join(invalid, ", "))
}

func asString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), nil
	case int, int64, uint64, float64, bool: // YAML is keen to type bare values
		return fmt.Sprint(t), nil
	}

	return "", fmt.Errorf("expected a string, not %T", v)
}

// asStrings accepts a list or a single scalar which is treated as a list of one.
func asStrings(v any) ([]string, error) {
	list, ok := v.([]any)
	if !ok {
		s, err := asString(v)
		if err != nil {
			return nil, err
		}
		if len(s) == 0 {
			return nil, nil
		}
		return []string{s}, nil
	}

	ret := make([]string, 0, len(list))
	for _, e := range list {
		s, err := asString(e)
		if err != nil {
			return nil, err
		}
		ret = append(ret, s)
	}

	return ret, nil
}

func asInt(v any) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	case uint64:
		if t > 1<<62 {
			return 0, fmt.Errorf("%d is too large", t)
		}
		return int64(t), nil
	case float64:
		if t != float64(int64(t)) {
			return 0, fmt.Errorf("%v is not a whole number", t)
		}
		return int64(t), nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(t), 10, 64)
	}

	return 0, fmt.Errorf("expected a number, not %T", v)
}
