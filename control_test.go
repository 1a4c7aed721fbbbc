package jsonschemaform

import "testing"

func TestFormControl_Leaf(t *testing.T) {
	c := NewControl(String("hello"))

	if got := c.Value(); !got.Equal(String("hello")) {
		t.Errorf("Value() = %v; want hello", got)
	}

	c.SetValue(Number(1))
	if got := c.Value(); !got.Equal(Number(1)) {
		t.Errorf("Value() after SetValue = %v; want 1", got)
	}

	if c.Errors() != nil {
		t.Error("new control should have no errors")
	}
	report := NewReport("required", true, nil, "value is required")
	c.SetErrors(report)
	if c.Errors() == nil {
		t.Error("Errors() = nil after SetErrors")
	}
	c.SetErrors(nil)
	if c.Errors() != nil {
		t.Error("Errors() should be nil after clearing")
	}
}

func TestFormControl_Group(t *testing.T) {
	g := NewGroup(map[string]*FormControl{
		"name": NewControl(String("alice")),
		"age":  NewControl(Number(30)),
	})

	v := g.Value()
	if v.Kind() != KindObject {
		t.Fatalf("Value().Kind() = %v; want object", v.Kind())
	}
	if got := v.Fields()["name"]; !got.Equal(String("alice")) {
		t.Errorf("name field = %v; want alice", got)
	}

	child := g.Child("age")
	if child == nil {
		t.Fatal("Child(age) = nil")
	}
	if got := child.Value(); !got.Equal(Number(30)) {
		t.Errorf("child value = %v; want 30", got)
	}
	if g.Child("missing") != nil {
		t.Error("Child(missing) should be nil")
	}

	// Group value tracks child mutation on next read.
	g.children["age"].SetValue(Number(31))
	if got := g.Value().Fields()["age"]; !got.Equal(Number(31)) {
		t.Errorf("age after mutation = %v; want 31", got)
	}

	// SetValue is a no-op for groups.
	g.SetValue(String("ignored"))
	if g.Value().Kind() != KindObject {
		t.Error("group value kind changed after SetValue")
	}
}

func TestFormControl_Array(t *testing.T) {
	a := NewArray(NewControl(Number(1)), NewControl(Number(2)))

	v := a.Value()
	if v.Kind() != KindArray {
		t.Fatalf("Value().Kind() = %v; want array", v.Kind())
	}
	if len(v.Items()) != 2 {
		t.Fatalf("len(items) = %d; want 2", len(v.Items()))
	}

	items := a.Items()
	if len(items) != 2 {
		t.Fatalf("len(Items()) = %d; want 2", len(items))
	}
	if got := items[1].Value(); !got.Equal(Number(2)) {
		t.Errorf("items[1] = %v; want 2", got)
	}
}
