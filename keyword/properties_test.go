package keyword

import (
	"testing"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
)

func obj(fields map[string]jsf.Value) jsf.Value {
	return jsf.Object(fields)
}

func TestMinPropertiesChecker(t *testing.T) {
	c := MinPropertiesChecker(2)

	tests := []struct {
		name    string
		value   jsf.Value
		wantErr bool
	}{
		{"enough", obj(map[string]jsf.Value{"a": jsf.Number(1), "b": jsf.Number(2)}), false},
		{"too few", obj(map[string]jsf.Value{"a": jsf.Number(1)}), true},
		{"empty object", obj(map[string]jsf.Value{}), true},
		{"array fails open", jsf.Array(jsf.Number(1)), false},
		{"absent valid", jsf.Absent(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := c.Check(ctrl(tt.value), false)
			if (report != nil) != tt.wantErr {
				t.Errorf("Check(%v) = %v; wantErr %v", tt.value, report, tt.wantErr)
			}
		})
	}
}

func TestMaxPropertiesChecker(t *testing.T) {
	c := MaxPropertiesChecker(1)

	if report := c.Check(ctrl(obj(map[string]jsf.Value{"a": jsf.Number(1)})), false); report != nil {
		t.Errorf("one member = %v; want nil", report)
	}
	if report := c.Check(ctrl(obj(map[string]jsf.Value{"a": jsf.Number(1), "b": jsf.Number(2)})), false); report == nil {
		t.Error("two members should produce a report")
	}
}

func TestDependenciesChecker(t *testing.T) {
	c := DependenciesChecker(map[string][]string{
		"creditCard": {"billingAddress", "cvv"},
	})

	tests := []struct {
		name    string
		value   jsf.Value
		wantErr bool
	}{
		{
			"trigger absent",
			obj(map[string]jsf.Value{"name": jsf.String("a")}),
			false,
		},
		{
			"trigger present with all deps",
			obj(map[string]jsf.Value{
				"creditCard":     jsf.String("4111"),
				"billingAddress": jsf.String("1 Main St"),
				"cvv":            jsf.String("123"),
			}),
			false,
		},
		{
			"trigger present missing one dep",
			obj(map[string]jsf.Value{
				"creditCard":     jsf.String("4111"),
				"billingAddress": jsf.String("1 Main St"),
			}),
			true,
		},
		{
			"trigger present dep empty",
			obj(map[string]jsf.Value{
				"creditCard":     jsf.String("4111"),
				"billingAddress": jsf.String(""),
				"cvv":            jsf.String("123"),
			}),
			true,
		},
		{
			"trigger present but empty",
			obj(map[string]jsf.Value{"creditCard": jsf.String("")}),
			false,
		},
		{"non-object fails open", jsf.String("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := c.Check(ctrl(tt.value), false)
			if (report != nil) != tt.wantErr {
				t.Errorf("Check(%v) = %v; wantErr %v", tt.value, report, tt.wantErr)
			}
		})
	}
}
