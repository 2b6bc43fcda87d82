// Package style models the CSS the page ships: ordered declarations, rules
// with a hover variant, responsive media blocks and keyframe animations.
package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Decl is a single CSS property/value pair.
type Decl struct {
	Property string
	Value    string
}

// Decls is an ordered declaration block. Order is kept so that rendering is
// deterministic.
type Decls []Decl

// D is shorthand for building a Decl.
func D(property, value string) Decl {
	return Decl{Property: property, Value: value}
}

// Inline renders the block for use in a style attribute.
func (d Decls) Inline() string {
	parts := make([]string, 0, len(d))
	for _, decl := range d {
		parts = append(parts, decl.Property+": "+decl.Value)
	}
	return strings.Join(parts, "; ")
}

// Get returns the value of the last declaration of property.
func (d Decls) Get(property string) (string, bool) {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i].Property == property {
			return d[i].Value, true
		}
	}
	return "", false
}

func (d Decls) write(b *strings.Builder, indent string) {
	for _, decl := range d {
		fmt.Fprintf(b, "%s%s: %s;\n", indent, decl.Property, decl.Value)
	}
}

// Rule styles a selector. Hover holds the pseudo-state override applied on
// :hover, rendered as its own block after the base declarations.
type Rule struct {
	Selector string
	Decls    Decls
	Hover    Decls
	Before   Decls
}

func (r Rule) write(b *strings.Builder, indent string) {
	block := func(selector string, decls Decls) {
		fmt.Fprintf(b, "%s%s {\n", indent, selector)
		decls.write(b, indent+"  ")
		fmt.Fprintf(b, "%s}\n", indent)
	}
	if len(r.Decls) > 0 {
		block(r.Selector, r.Decls)
	}
	if len(r.Before) > 0 {
		block(r.Selector+"::before", r.Before)
	}
	if len(r.Hover) > 0 {
		block(r.Selector+":hover", r.Hover)
	}
}

// Media groups rules that only apply from a minimum viewport width.
type Media struct {
	MinWidth string
	Rules    []Rule
}

// Stop is one keyframe offset such as "50%".
type Stop struct {
	Offset string
	Decls  Decls
}

// Keyframes is a named animation referenced from an animation declaration.
type Keyframes struct {
	Name  string
	Stops []Stop
}

// Validate checks that every offset is a percentage between 0 and 100 and
// that offsets strictly increase.
func (k Keyframes) Validate() error {
	if k.Name == "" {
		return fmt.Errorf("keyframes: empty name")
	}
	if len(k.Stops) == 0 {
		return fmt.Errorf("keyframes %s: no stops", k.Name)
	}
	last := -1.0
	for _, stop := range k.Stops {
		pct, err := ParsePercent(stop.Offset)
		if err != nil {
			return fmt.Errorf("keyframes %s: %w", k.Name, err)
		}
		if pct <= last {
			return fmt.Errorf("keyframes %s: offset %s out of order", k.Name, stop.Offset)
		}
		last = pct
	}
	return nil
}

func (k Keyframes) write(b *strings.Builder) {
	fmt.Fprintf(b, "@keyframes %s {\n", k.Name)
	for _, stop := range k.Stops {
		fmt.Fprintf(b, "  %s {\n", stop.Offset)
		stop.Decls.write(b, "    ")
		b.WriteString("  }\n")
	}
	b.WriteString("}\n")
}

// ParsePercent parses a keyframe offset of the form "N%" with 0 <= N <= 100.
func ParsePercent(offset string) (float64, error) {
	raw, ok := strings.CutSuffix(strings.TrimSpace(offset), "%")
	if !ok {
		return 0, fmt.Errorf("offset %q is not a percentage", offset)
	}
	pct, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("offset %q: %w", offset, err)
	}
	if pct < 0 || pct > 100 {
		return 0, fmt.Errorf("offset %q outside 0%%..100%%", offset)
	}
	return pct, nil
}

// Sheet is an ordered stylesheet.
type Sheet struct {
	Rules     []Rule
	Media     []Media
	Keyframes []Keyframes
}

// Add appends rules and returns the sheet for chaining.
func (s *Sheet) Add(rules ...Rule) *Sheet {
	s.Rules = append(s.Rules, rules...)
	return s
}

// AddMedia appends rules scoped to a min-width media query.
func (s *Sheet) AddMedia(minWidth string, rules ...Rule) *Sheet {
	s.Media = append(s.Media, Media{MinWidth: minWidth, Rules: rules})
	return s
}

// AddKeyframes appends animation definitions.
func (s *Sheet) AddKeyframes(k ...Keyframes) *Sheet {
	s.Keyframes = append(s.Keyframes, k...)
	return s
}

// Merge appends every part of other onto s.
func (s *Sheet) Merge(other Sheet) *Sheet {
	s.Rules = append(s.Rules, other.Rules...)
	s.Media = append(s.Media, other.Media...)
	s.Keyframes = append(s.Keyframes, other.Keyframes...)
	return s
}

// String renders keyframes first, then plain rules, then media blocks so that
// breakpoint overrides win over the base rules.
func (s Sheet) String() string {
	var b strings.Builder
	for _, k := range s.Keyframes {
		k.write(&b)
	}
	for _, r := range s.Rules {
		r.write(&b, "")
	}
	for _, m := range s.Media {
		fmt.Fprintf(&b, "@media (min-width: %s) {\n", m.MinWidth)
		for _, r := range m.Rules {
			r.write(&b, "  ")
		}
		b.WriteString("}\n")
	}
	return b.String()
}
