// Package formstate tracks form state that outlives a single keystroke:
// sections that hide and clear their fields, and repeatable groups of entries.
package formstate

// Conditional guards a set of fields that are only shown while some other
// answer allows it. Hiding clears the fields so stale answers are never
// submitted; showing again restores what the user had typed.
type Conditional struct {
	fields   []string
	hidden   bool
	captured map[string]string
}

// NewConditional returns a visible section guarding fields.
func NewConditional(fields ...string) *Conditional {
	return &Conditional{fields: fields}
}

// Hidden reports whether the section is currently hidden.
func (c *Conditional) Hidden() bool {
	return c.hidden
}

// Fields returns the guarded field names.
func (c *Conditional) Fields() []string {
	return append([]string(nil), c.fields...)
}

// Hide captures the guarded fields from values and clears them in place.
// Hiding an already hidden section does nothing.
func (c *Conditional) Hide(values map[string]string) {
	if c.hidden {
		return
	}
	c.hidden = true
	c.captured = make(map[string]string, len(c.fields))
	for _, f := range c.fields {
		c.captured[f] = values[f]
		if _, ok := values[f]; ok {
			values[f] = ""
		}
	}
}

// Show restores captured values into values and returns them. Showing an
// already visible section does nothing and returns nil.
func (c *Conditional) Show(values map[string]string) map[string]string {
	if !c.hidden {
		return nil
	}
	c.hidden = false
	restored := c.captured
	c.captured = nil
	for f, v := range restored {
		values[f] = v
	}
	return restored
}

// Set hides or shows the section.
func (c *Conditional) Set(visible bool, values map[string]string) {
	if visible {
		c.Show(values)
		return
	}
	c.Hide(values)
}
