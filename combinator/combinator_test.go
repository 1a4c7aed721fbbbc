package combinator

import (
	"testing"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
	"github.com/saif-khaled/angular2-json-schema-form/keyword"
)

func ctrl(v jsf.Value) jsf.Control {
	return jsf.NewControl(v)
}

// pass and fail are fixed-outcome checkers honoring the invert contract.
func pass(name string) jsf.Checker {
	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		if !invert {
			return nil
		}
		return jsf.NewReport(name, nil, nil, name+" unexpectedly valid")
	})
}

func fail(name string) jsf.Checker {
	return jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		if invert {
			return nil
		}
		return jsf.NewReport(name, nil, nil, name+" failed")
	})
}

func TestAllOf(t *testing.T) {
	v := jsf.String("x")

	tests := []struct {
		name     string
		checkers []jsf.Checker
		wantErr  bool
	}{
		{"empty is valid", nil, false},
		{"all pass", []jsf.Checker{pass("a"), pass("b")}, false},
		{"one fails", []jsf.Checker{pass("a"), fail("b")}, true},
		{"all fail", []jsf.Checker{fail("a"), fail("b")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := AllOf(tt.checkers...).Check(ctrl(v), false)
			if (report != nil) != tt.wantErr {
				t.Errorf("AllOf = %v; wantErr %v", report, tt.wantErr)
			}
		})
	}
}

func TestAllOf_MergesFailingBranches(t *testing.T) {
	report := AllOf(fail("a"), pass("b"), fail("c")).Check(ctrl(jsf.Number(1)), false)
	if len(report) != 2 {
		t.Fatalf("len(report) = %d; want 2", len(report))
	}
	if _, ok := report["a"]; !ok {
		t.Error("report missing branch a")
	}
	if _, ok := report["c"]; !ok {
		t.Error("report missing branch c")
	}
}

func TestAllOf_FirstBranchWinsOnKeyCollision(t *testing.T) {
	first := jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		return jsf.NewReport("dup", nil, nil, "first")
	})
	second := jsf.CheckerFunc(func(c jsf.Control, invert bool) jsf.ErrorReport {
		return jsf.NewReport("dup", nil, nil, "second")
	})
	report := AllOf(first, second).Check(ctrl(jsf.Number(1)), false)
	if report["dup"].Message != "first" {
		t.Errorf("Message = %q; want first", report["dup"].Message)
	}
}

func TestCompose_SameLogicAsAllOf(t *testing.T) {
	v := jsf.Number(1)
	if report := Compose(pass("a"), pass("b")).Check(ctrl(v), false); report != nil {
		t.Errorf("Compose all pass = %v; want nil", report)
	}
	if report := Compose(pass("a"), fail("b")).Check(ctrl(v), false); report == nil {
		t.Error("Compose with failing branch should produce a report")
	}
}

func TestAnyOf(t *testing.T) {
	v := jsf.Number(1)

	tests := []struct {
		name     string
		checkers []jsf.Checker
		wantErr  bool
	}{
		{"empty is invalid", nil, true},
		{"one passes", []jsf.Checker{fail("a"), pass("b")}, false},
		{"all pass", []jsf.Checker{pass("a"), pass("b")}, false},
		{"all fail", []jsf.Checker{fail("a"), fail("b")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := AnyOf(tt.checkers...).Check(ctrl(v), false)
			if (report != nil) != tt.wantErr {
				t.Errorf("AnyOf = %v; wantErr %v", report, tt.wantErr)
			}
		})
	}
}

func TestAnyOf_FailureCarriesBranches(t *testing.T) {
	report := AnyOf(fail("a"), fail("b")).Check(ctrl(jsf.Number(1)), false)
	detail, ok := report["anyOf"]
	if !ok {
		t.Fatal("report should carry an anyOf entry")
	}
	if len(detail.Branches) != 2 {
		t.Errorf("len(Branches) = %d; want 2", len(detail.Branches))
	}
	// Branch reports also union into the top level.
	if _, ok := report["a"]; !ok {
		t.Error("report missing branch a keys")
	}
}

func TestOneOf(t *testing.T) {
	v := jsf.Number(1)

	tests := []struct {
		name     string
		checkers []jsf.Checker
		wantErr  bool
	}{
		{"exactly one", []jsf.Checker{fail("a"), pass("b"), fail("c")}, false},
		{"none", []jsf.Checker{fail("a"), fail("b")}, true},
		{"two", []jsf.Checker{pass("a"), pass("b"), fail("c")}, true},
		{"all", []jsf.Checker{pass("a"), pass("b")}, true},
		{"empty is invalid", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := OneOf(tt.checkers...).Check(ctrl(v), false)
			if (report != nil) != tt.wantErr {
				t.Errorf("OneOf = %v; wantErr %v", report, tt.wantErr)
			}
		})
	}
}

func TestOneOf_TooManyReportsPassCount(t *testing.T) {
	report := OneOf(pass("a"), pass("b"), fail("c")).Check(ctrl(jsf.Number(1)), false)
	detail, ok := report["oneOf"]
	if !ok {
		t.Fatal("report should carry a oneOf entry")
	}
	if detail.Actual != 2 {
		t.Errorf("Actual = %v; want 2", detail.Actual)
	}
}

func TestNot(t *testing.T) {
	v := jsf.String("hello")

	if report := Not(fail("inner")).Check(ctrl(v), false); report != nil {
		t.Errorf("Not(failing) = %v; want nil", report)
	}
	report := Not(pass("inner")).Check(ctrl(v), false)
	if report == nil {
		t.Fatal("Not(passing) should produce a report")
	}
	if _, ok := report["not"]; !ok {
		t.Errorf("report keyed %v; want not", report.Keywords())
	}
}

func TestNot_DoubleNegation(t *testing.T) {
	inner := keyword.MinLengthChecker(3)
	double := Not(Not(inner))

	for _, tt := range []struct {
		value   jsf.Value
		wantErr bool
	}{
		{jsf.String("abc"), false},
		{jsf.String("ab"), true},
		{jsf.Absent(), false},
	} {
		inner0 := inner.Check(ctrl(tt.value), false)
		doubled := double.Check(ctrl(tt.value), false)
		if (inner0 == nil) != (doubled == nil) {
			t.Errorf("value %v: inner=%v doubled=%v; double negation must preserve validity", tt.value, inner0, doubled)
		}
		if (doubled != nil) != tt.wantErr {
			t.Errorf("value %v: doubled=%v; wantErr %v", tt.value, doubled, tt.wantErr)
		}
	}
}

func TestCombinators_InvertComplement(t *testing.T) {
	combos := map[string]jsf.Checker{
		"allOf pass":  AllOf(pass("a"), pass("b")),
		"allOf fail":  AllOf(pass("a"), fail("b")),
		"anyOf pass":  AnyOf(fail("a"), pass("b")),
		"anyOf fail":  AnyOf(fail("a"), fail("b")),
		"oneOf pass":  OneOf(pass("a"), fail("b")),
		"oneOf multi": OneOf(pass("a"), pass("b")),
		"not pass":    Not(fail("a")),
		"not fail":    Not(pass("a")),
	}

	for name, c := range combos {
		t.Run(name, func(t *testing.T) {
			plain := c.Check(ctrl(jsf.Number(1)), false)
			inverted := c.Check(ctrl(jsf.Number(1)), true)
			if (plain == nil) == (inverted == nil) {
				t.Errorf("plain=%v inverted=%v; want strict complement", plain, inverted)
			}
		})
	}
}

func TestCombinators_NestedTree(t *testing.T) {
	// (string AND minLength 3) OR integer
	tree := AnyOf(
		AllOf(keyword.MustType("string"), keyword.MinLengthChecker(3)),
		keyword.MustType("integer"),
	)

	tests := []struct {
		name    string
		value   jsf.Value
		wantErr bool
	}{
		{"long string", jsf.String("abc"), false},
		{"integer", jsf.Number(7), false},
		{"short string", jsf.String("ab"), true},
		{"fraction", jsf.Number(7.5), true},
		{"absent valid everywhere", jsf.Absent(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := tree.Check(ctrl(tt.value), false)
			if (report != nil) != tt.wantErr {
				t.Errorf("Check(%v) = %v; wantErr %v", tt.value, report, tt.wantErr)
			}
		})
	}
}
