package view

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Rohancherukuri/portfolio/internal/content"
	"github.com/Rohancherukuri/portfolio/internal/icons"
)

// BadgeScheme picks the tint of a Badge.
type BadgeScheme string

const (
	BadgeGray   BadgeScheme = "gray"
	BadgePurple BadgeScheme = "purple"
	BadgeBlue   BadgeScheme = "blue"
)

// Icon renders a lucide icon placeholder of size px. An empty color inherits
// the surrounding text colour. Unknown names panic: they are authoring errors
// that content validation already rejects.
func (b Builder) Icon(name string, size int, color string) g.Node {
	if !icons.Known(name) {
		panic(fmt.Sprintf("view: unknown icon %q", name))
	}
	css := fmt.Sprintf("width: %dpx; height: %dpx", size, size)
	if color != "" {
		css += "; color: " + color
	}
	px := strconv.Itoa(size)
	return Span(
		Class("iconify icon"),
		g.Attr("data-icon", icons.ID(name)),
		g.Attr("data-width", px),
		g.Attr("data-height", px),
		g.Attr("aria-hidden", "true"),
		Style(css),
	)
}

// externalAttrs opens http(s) destinations in a new browsing context.
func externalAttrs(href string) g.Node {
	return g.If(content.External(href), g.Group{
		Target("_blank"),
		Rel("noopener noreferrer"),
	})
}

// StyledLink is a text link with an optional leading icon. icon may be empty.
func (b Builder) StyledLink(text, url, icon string) g.Node {
	return A(
		Class("styled-link"),
		Href(url),
		externalAttrs(url),
		g.Iff(icon != "", func() g.Node { return b.Icon(icon, 18, "") }),
		Span(g.Text(text)),
	)
}

// GradientText is an h2 whose glyphs are filled with the animated accent
// gradient.
func (b Builder) GradientText(text, size string) g.Node {
	return gradientText(H2, text, size)
}

func gradientText(el func(...g.Node) g.Node, text, size string) g.Node {
	return el(
		Class("gradient-text"),
		Style("font-size: "+size),
		g.Text(text),
	)
}

// Badge is a small soft-tinted tag.
func (b Builder) Badge(text string, scheme BadgeScheme) g.Node {
	return Span(Class("badge badge--"+string(scheme)), g.Text(text))
}

// SectionHeading is the gradient title plus the short accent bar every
// content section opens with.
func (b Builder) SectionHeading(title string) g.Node {
	return Div(
		Class("section-heading"),
		b.GradientText(title, "2rem"),
		Div(Class("section-heading__bar")),
	)
}

func (b Builder) iconLink(label, href, icon string, size int, color string) g.Node {
	return A(
		Class("icon-link"),
		Href(href),
		externalAttrs(href),
		g.Attr("aria-label", label),
		b.Icon(icon, size, color),
	)
}
