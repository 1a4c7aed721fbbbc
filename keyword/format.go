package keyword

import (
	"fmt"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
)

// formatRecognizer reports whether a string conforms to one format tag.
type formatRecognizer func(s string) bool

var (
	// RFC 1123 labels: alphanumeric with inner hyphens, dot separated,
	// 253 chars total.
	hostnameRe = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

	// CSS hex colors, short and long form.
	colorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// formatRecognizers dispatches the enumerated format tags.
var formatRecognizers = map[string]formatRecognizer{
	"date-time": isDateTime,
	"email":     isEmail,
	"hostname":  isHostname,
	"ipv4":      isIPv4,
	"ipv6":      isIPv6,
	"uri":       isURI,
	"url":       isURL,
	"color":     isColor,
}

// FormatChecker returns a checker validating string values against the
// named format. Unknown format tags fail open (always valid) so schemas
// using newer formats keep working. Non-string values are valid.
func FormatChecker(format string) jsf.Checker {
	recognize, known := formatRecognizers[format]

	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		v := c.Value()
		if report, empty := emptyVerdict(v, invert, "format"); empty {
			return report
		}
		if !known || v.Kind() != jsf.KindString {
			return verdict(true, invert, func() jsf.ErrorReport {
				return jsf.NewReport("format", format, v.Interface(), "value unexpectedly valid under inverted format")
			})
		}

		return verdict(recognize(v.Str()), invert, func() jsf.ErrorReport {
			if invert {
				return jsf.NewReport("format", format, v.Str(),
					fmt.Sprintf("string must not be a valid %s", format))
			}
			return jsf.NewReport("format", format, v.Str(),
				fmt.Sprintf("string is not a valid %s", format))
		})
	})
}

func isDateTime(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	// Reject display-name forms; the format targets bare addresses.
	return err == nil && addr.Address == s
}

func isHostname(s string) bool {
	return len(s) <= 253 && hostnameRe.MatchString(s)
}

func isIPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil && strings.Count(s, ".") == 3
}

func isIPv6(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && strings.Contains(s, ":")
}

func isURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func isColor(s string) bool {
	return colorRe.MatchString(s)
}
