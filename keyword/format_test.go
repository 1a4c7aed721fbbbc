package keyword

import (
	"testing"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
)

func TestFormatChecker(t *testing.T) {
	tests := []struct {
		format  string
		value   string
		wantErr bool
	}{
		{"date-time", "2024-06-15T10:30:00Z", false},
		{"date-time", "2024-06-15T10:30:00+02:00", false},
		{"date-time", "2024-06-15", true},
		{"date-time", "not a date", true},

		{"email", "alice@example.com", false},
		{"email", "alice", true},
		{"email", "Alice <alice@example.com>", true},

		{"hostname", "example.com", false},
		{"hostname", "sub.example-1.com", false},
		{"hostname", "-bad.example.com", true},
		{"hostname", "exa_mple.com", true},

		{"ipv4", "192.168.0.1", false},
		{"ipv4", "256.1.1.1", true},
		{"ipv4", "::1", true},

		{"ipv6", "::1", false},
		{"ipv6", "2001:db8::8a2e:370:7334", false},
		{"ipv6", "192.168.0.1", true},

		{"uri", "https://example.com/path", false},
		{"uri", "urn:isbn:0451450523", false},
		{"uri", "not a uri", true},

		{"url", "https://example.com", false},
		{"url", "urn:isbn:0451450523", true},

		{"color", "#fff", false},
		{"color", "#a1b2c3", false},
		{"color", "#ab", true},
		{"color", "red", true},
	}

	for _, tt := range tests {
		t.Run(tt.format+"/"+tt.value, func(t *testing.T) {
			c := FormatChecker(tt.format)
			report := c.Check(ctrl(jsf.String(tt.value)), false)
			if (report != nil) != tt.wantErr {
				t.Errorf("format %s value %q = %v; wantErr %v", tt.format, tt.value, report, tt.wantErr)
			}
		})
	}
}

func TestFormatChecker_UnknownFormatFailsOpen(t *testing.T) {
	c := FormatChecker("uuid")
	if report := c.Check(ctrl(jsf.String("definitely not a uuid")), false); report != nil {
		t.Errorf("unknown format = %v; want nil", report)
	}
}

func TestFormatChecker_NonStringFailsOpen(t *testing.T) {
	c := FormatChecker("email")
	if report := c.Check(ctrl(jsf.Number(42)), false); report != nil {
		t.Errorf("number under email format = %v; want nil", report)
	}
}

func TestFormatChecker_EmptyValid(t *testing.T) {
	c := FormatChecker("email")
	for _, v := range []jsf.Value{jsf.Absent(), jsf.Null(), jsf.String("")} {
		if report := c.Check(ctrl(v), false); report != nil {
			t.Errorf("empty value %v = %v; want nil", v, report)
		}
	}
}
