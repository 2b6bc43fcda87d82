// Package view builds the page sections as gomponents trees.
//
// A Builder carries the theme, the content and a clock. Its methods are pure:
// the same Builder called with the same arguments renders the same HTML.
// Hover states are :hover blocks in the Stylesheet, never event handlers. The
// scroll-to-top button is the only element that runs script.
package view

import (
	"time"

	"github.com/Rohancherukuri/portfolio/internal/content"
	"github.com/Rohancherukuri/portfolio/internal/theme"
)

// Builder composes sections from a theme and a profile.
type Builder struct {
	theme   theme.Theme
	profile content.Profile
	now     func() time.Time
}

// BuildOption configures a Builder.
type BuildOption func(*Builder)

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) BuildOption {
	return func(b *Builder) {
		b.now = now
	}
}

// New returns a Builder for t and p.
func New(t theme.Theme, p content.Profile, opts ...BuildOption) Builder {
	b := Builder{
		theme:   t,
		profile: p,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Theme returns the builder's theme.
func (b Builder) Theme() theme.Theme {
	return b.theme
}

// Profile returns the builder's content.
func (b Builder) Profile() content.Profile {
	return b.profile
}

// Now returns the builder clock's current time.
func (b Builder) Now() time.Time {
	return b.now()
}

func (b Builder) color(role theme.Role) string {
	return b.theme.C(role)
}
