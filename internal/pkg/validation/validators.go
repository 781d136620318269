package validation

import (
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	hexColorPattern  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	clubIDPattern    = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	timezonePattern  = regexp.MustCompile(`^[A-Za-z_]+(/[A-Za-z0-9+_-]+)+$`)
)

// IsTimeOfDay reports whether s is a zero-padded 24-hour HH:MM string.
// Times carry no timezone; they are interpreted against the club's timezone
// by the consuming system.
func IsTimeOfDay(s string) bool {
	return timeOfDayPattern.MatchString(s)
}

// IsHexColor reports whether s is "#" followed by exactly six hex digits.
// Three-digit shorthand is rejected.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// IsURL reports whether s parses as an absolute URL with a scheme and host.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// IsClubID reports whether s is a well-formed club identifier: lowercase
// letters, digits and single hyphens, no whitespace.
func IsClubID(s string) bool {
	return clubIDPattern.MatchString(s)
}

// IsTimezone reports whether s is a syntactically plausible IANA zone name
// (Area/Location, e.g. "Australia/Sydney"). "UTC" is accepted as well.
func IsTimezone(s string) bool {
	return s == "UTC" || timezonePattern.MatchString(s)
}

// New returns a validator with the application's custom field validators and
// yaml-tag field naming registered. Schemas construct one per Validate call.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(yamlTagName)

	// Registration only fails for blank tag names.
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return IsTimeOfDay(fl.Field().String())
	})
	_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
		return IsHexColor(fl.Field().String())
	})
	_ = v.RegisterValidation("clubid", func(fl validator.FieldLevel) bool {
		return IsClubID(fl.Field().String())
	})
	_ = v.RegisterValidation("tzname", func(fl validator.FieldLevel) bool {
		return IsTimezone(fl.Field().String())
	})
	_ = v.RegisterValidation("absurl", func(fl validator.FieldLevel) bool {
		return IsURL(fl.Field().String())
	})

	return v
}

func yamlTagName(fld reflect.StructField) string {
	tag := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	if tag == "" || tag == "-" {
		return fld.Name
	}
	return tag
}
