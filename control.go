package jsonschemaform

// Control is the mutable container that validators read: a current value
// plus a writable error slot. Checkers borrow the control read-only; they
// never write the error slot themselves. Attaching a returned report is the
// caller's job.
type Control interface {
	// Value returns the current value.
	Value() Value

	// Errors returns the report last attached to the error slot, or nil.
	Errors() ErrorReport

	// SetErrors writes the error slot. Pass nil to mark the control valid.
	SetErrors(ErrorReport)
}

// GroupControl is a Control whose value is a keyed mapping of nested
// controls.
type GroupControl interface {
	Control

	// Child returns the named nested control, or nil.
	Child(name string) Control
}

// ArrayControl is a Control whose value is an ordered sequence of nested
// controls.
type ArrayControl interface {
	Control

	// Items returns the nested controls in order.
	Items() []Control
}

// FormControl is the reference Control implementation. It is either a leaf
// holding its own value, a group of named child controls, or an array of
// child controls. Group and array controls derive their value from their
// children on every read.
//
// FormControl is not synchronized: validators only read, and hosts that
// mutate values concurrently must coordinate above this layer.
type FormControl struct {
	value    Value
	errors   ErrorReport
	children map[string]*FormControl
	items    []*FormControl
	isGroup  bool
	isArray  bool
}

// NewControl creates a leaf control holding the given value.
func NewControl(v Value) *FormControl {
	return &FormControl{value: v}
}

// NewGroup creates a group control over named child controls.
func NewGroup(children map[string]*FormControl) *FormControl {
	if children == nil {
		children = make(map[string]*FormControl)
	}
	return &FormControl{children: children, isGroup: true}
}

// NewArray creates an array control over child controls.
func NewArray(items ...*FormControl) *FormControl {
	return &FormControl{items: items, isArray: true}
}

// Value returns the control's current value. For groups and arrays the
// value is assembled from the children.
func (c *FormControl) Value() Value {
	switch {
	case c.isGroup:
		fields := make(map[string]Value, len(c.children))
		for name, child := range c.children {
			fields[name] = child.Value()
		}
		return Object(fields)
	case c.isArray:
		items := make([]Value, len(c.items))
		for i, child := range c.items {
			items[i] = child.Value()
		}
		return Array(items...)
	default:
		return c.value
	}
}

// SetValue replaces a leaf control's value. Calling SetValue on a group or
// array control is a no-op; set the children instead.
func (c *FormControl) SetValue(v Value) {
	if c.isGroup || c.isArray {
		return
	}
	c.value = v
}

// Errors returns the attached error report, or nil.
func (c *FormControl) Errors() ErrorReport { return c.errors }

// SetErrors writes the error slot.
func (c *FormControl) SetErrors(r ErrorReport) { c.errors = r }

// Child returns the named child control, or nil for leaves and arrays.
func (c *FormControl) Child(name string) Control {
	child, ok := c.children[name]
	if !ok {
		return nil
	}
	return child
}

// Items returns the child controls of an array control.
func (c *FormControl) Items() []Control {
	if len(c.items) == 0 {
		return nil
	}
	items := make([]Control, len(c.items))
	for i, child := range c.items {
		items[i] = child
	}
	return items
}

// verify interface satisfaction
var (
	_ Control      = (*FormControl)(nil)
	_ GroupControl = (*FormControl)(nil)
	_ ArrayControl = (*FormControl)(nil)
)
