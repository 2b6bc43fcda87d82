// Package theme holds the colour palette, keyframe animations and typography
// every builder reads from. A Theme is a value: build it once at startup and
// pass it down; nothing here is global or mutable.
package theme

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/Rohancherukuri/portfolio/internal/style"
)

// Role names a semantic colour slot.
type Role string

const (
	BgPrimary     Role = "bg_primary"
	BgSecondary   Role = "bg_secondary"
	BgCard        Role = "bg_card"
	TextPrimary   Role = "text_primary"
	TextSecondary Role = "text_secondary"
	Accent        Role = "accent"
	AccentHover   Role = "accent_hover"
	Border        Role = "border"
	GradientStart Role = "gradient_start"
	GradientEnd   Role = "gradient_end"
)

// Roles lists every role a palette must define.
func Roles() []Role {
	return []Role{
		BgPrimary, BgSecondary, BgCard,
		TextPrimary, TextSecondary,
		Accent, AccentHover, Border,
		GradientStart, GradientEnd,
	}
}

// Animation names.
const (
	GradientShift = "gradientShift"
	FadeInUp      = "fadeInUp"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsHexColor reports whether v is a #RRGGBB colour, the only form Alpha can
// extend.
func IsHexColor(v string) bool {
	return hexColor.MatchString(v)
}

// Palette maps every Role to a colour.
type Palette struct {
	colors map[Role]string
}

// NewPalette copies colors into a palette, rejecting missing roles and values
// that are not #RRGGBB.
func NewPalette(colors map[Role]string) (Palette, error) {
	p := Palette{colors: make(map[Role]string, len(colors))}
	for _, role := range Roles() {
		v, ok := colors[role]
		if !ok {
			return Palette{}, fmt.Errorf("palette: missing role %q", role)
		}
		if !IsHexColor(v) {
			return Palette{}, fmt.Errorf("palette: role %q: %q is not a #RRGGBB colour", role, v)
		}
		p.colors[role] = v
	}
	for role := range colors {
		if _, ok := p.colors[role]; !ok {
			return Palette{}, fmt.Errorf("palette: unknown role %q", role)
		}
	}
	return p, nil
}

// DefaultPalette is the dark palette with indigo/violet accents.
func DefaultPalette() Palette {
	p, err := NewPalette(map[Role]string{
		BgPrimary:     "#0A0A0A",
		BgSecondary:   "#1A1A1A",
		BgCard:        "#141414",
		TextPrimary:   "#FFFFFF",
		TextSecondary: "#A0A0A0",
		Accent:        "#6366F1",
		AccentHover:   "#818CF8",
		Border:        "#2A2A2A",
		GradientStart: "#6366F1",
		GradientEnd:   "#8B5CF6",
	})
	if err != nil {
		panic(err)
	}
	return p
}

// Color returns the colour for role. A miss means a builder references a
// role the palette does not define, so it panics.
func (p Palette) Color(role Role) string {
	v, ok := p.colors[role]
	if !ok {
		panic(fmt.Sprintf("theme: palette has no role %q", role))
	}
	return v
}

// Lookup returns the colour for role and whether it is defined.
func (p Palette) Lookup(role Role) (string, bool) {
	v, ok := p.colors[role]
	return v, ok
}

// With returns a copy of p with the given roles replaced. The result is
// validated like NewPalette.
func (p Palette) With(overrides map[Role]string) (Palette, error) {
	merged := make(map[Role]string, len(p.colors)+len(overrides))
	for k, v := range p.colors {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return NewPalette(merged)
}

// Map returns a copy of the palette as a plain map.
func (p Palette) Map() map[Role]string {
	out := make(map[Role]string, len(p.colors))
	for k, v := range p.colors {
		out[k] = v
	}
	return out
}

// Alpha appends a two hex digit alpha channel to a #RRGGBB colour, e.g.
// Alpha("#6366F1", "50") is "#6366F150".
func Alpha(color, alpha string) string {
	return color + alpha
}

// DefaultAnimations returns the two keyframe animations the page declares.
func DefaultAnimations() []style.Keyframes {
	return []style.Keyframes{
		{
			Name: GradientShift,
			Stops: []style.Stop{
				{Offset: "0%", Decls: style.Decls{style.D("background-position", "0% 50%")}},
				{Offset: "50%", Decls: style.Decls{style.D("background-position", "100% 50%")}},
				{Offset: "100%", Decls: style.Decls{style.D("background-position", "0% 50%")}},
			},
		},
		{
			Name: FadeInUp,
			Stops: []style.Stop{
				{Offset: "0%", Decls: style.Decls{style.D("opacity", "0"), style.D("transform", "translateY(20px)")}},
				{Offset: "100%", Decls: style.Decls{style.D("opacity", "1"), style.D("transform", "translateY(0)")}},
			},
		},
	}
}

// Theme bundles everything the builders style with.
type Theme struct {
	Palette        Palette
	Animations     []style.Keyframes
	FontFamily     string
	FontStylesheet string
}

// Default is the theme the site ships with.
func Default() Theme {
	return Theme{
		Palette:        DefaultPalette(),
		Animations:     DefaultAnimations(),
		FontFamily:     "'Inter', sans-serif",
		FontStylesheet: "https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700;800&display=swap",
	}
}

// C is shorthand for t.Palette.Color(role).
func (t Theme) C(role Role) string {
	return t.Palette.Color(role)
}

// WithPalette returns a copy of t using p.
func (t Theme) WithPalette(p Palette) Theme {
	t.Palette = p
	t.Animations = append([]style.Keyframes(nil), t.Animations...)
	return t
}

// Animation returns the named keyframes. Unknown names panic.
func (t Theme) Animation(name string) style.Keyframes {
	for _, k := range t.Animations {
		if k.Name == name {
			return k
		}
	}
	panic(fmt.Sprintf("theme: no animation %q", name))
}

// Validate checks the palette is complete and every animation is well formed.
func (t Theme) Validate() error {
	for _, role := range Roles() {
		if _, ok := t.Palette.Lookup(role); !ok {
			return fmt.Errorf("theme: palette has no role %q", role)
		}
	}
	seen := make(map[string]bool, len(t.Animations))
	for _, k := range t.Animations {
		if seen[k.Name] {
			return fmt.Errorf("theme: duplicate animation %q", k.Name)
		}
		seen[k.Name] = true
		if err := k.Validate(); err != nil {
			return fmt.Errorf("theme: %w", err)
		}
	}
	return nil
}

// sortedRoles returns the palette's roles in Roles() order.
func (p Palette) sortedRoles() []Role {
	order := make(map[Role]int, len(Roles()))
	for i, r := range Roles() {
		order[r] = i
	}
	roles := make([]Role, 0, len(p.colors))
	for r := range p.colors {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return order[roles[i]] < order[roles[j]] })
	return roles
}
