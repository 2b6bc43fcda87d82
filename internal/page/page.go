// Package page assembles the sections into the single-page HTML document.
package page

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Rohancherukuri/portfolio/internal/icons"
	"github.com/Rohancherukuri/portfolio/internal/style"
	"github.com/Rohancherukuri/portfolio/internal/theme"
	"github.com/Rohancherukuri/portfolio/internal/view"
)

// Order lists the section ids in the order Assemble stacks them.
var Order = []string{
	view.SectionHero,
	view.SectionAbout,
	view.SectionExperience,
	view.SectionProjects,
	view.SectionSkills,
	view.SectionEducation,
	view.SectionContact,
	view.SectionFooter,
}

// Assemble is the body content: a centred container holding the sections
// with no gap between them, followed by the floating scroll-to-top button.
func Assemble(b view.Builder) g.Node {
	return Div(
		Class("page"),
		Main(
			Class("container"),
			Div(
				Class("page-stack"),
				b.Header(),
				b.About(),
				b.Experience(),
				b.Projects(),
				b.Skills(),
				b.Education(),
				b.Contact(),
				b.Footer(),
			),
		),
		b.ScrollToTop(),
	)
}

// Stylesheet is the full CSS for the page: global rules and keyframes from the
// theme, the container, then every component rule.
func Stylesheet(b view.Builder) style.Sheet {
	t := b.Theme()
	d := style.D

	var s style.Sheet
	s.AddKeyframes(t.Animations...)
	s.Add(
		style.Rule{
			Selector: "*, *::before, *::after",
			Decls:    style.Decls{d("box-sizing", "border-box")},
		},
		style.Rule{
			Selector: "html",
			Decls:    style.Decls{d("scroll-behavior", "smooth")},
		},
		style.Rule{
			Selector: "body",
			Decls: style.Decls{
				d("margin", "0"),
				d("font-family", t.FontFamily),
				d("background", t.C(theme.BgPrimary)),
				d("color", t.C(theme.TextPrimary)),
			},
		},
		style.Rule{
			Selector: ".page",
			Decls: style.Decls{
				d("min-height", "100vh"),
				d("background", t.C(theme.BgPrimary)),
			},
		},
		style.Rule{
			Selector: ".container",
			Decls: style.Decls{
				d("width", "100%"),
				d("max-width", "1200px"),
				d("margin", "0 auto"),
				d("padding", "0 1rem"),
			},
		},
		style.Rule{
			Selector: ".page-stack",
			Decls: style.Decls{
				d("display", "flex"),
				d("flex-direction", "column"),
				d("gap", "0"),
			},
		},
	)
	s.AddMedia(view.BreakpointSm, style.Rule{Selector: ".container", Decls: style.Decls{d("padding", "0 2rem")}})
	s.AddMedia(view.BreakpointLg, style.Rule{Selector: ".container", Decls: style.Decls{d("padding", "0 4rem")}})
	s.Merge(b.Stylesheet())
	return s
}

// Document is the complete HTML document.
func Document(b view.Builder) g.Node {
	t := b.Theme()
	m := b.Profile().Meta

	return Doctype(
		HTML(
			Lang(m.Language),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(m.Title)),
				g.Iff(m.Description != "", func() g.Node {
					return Meta(Name("description"), Content(m.Description))
				}),
				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("stylesheet"), Href(t.FontStylesheet)),
				StyleEl(g.Raw(Stylesheet(b).String())),
				Script(Src(icons.Script)),
			),
			Body(Assemble(b)),
		),
	)
}

// Render writes the document for b to w. The theme is checked first so a
// broken palette or animation fails here rather than mid-render.
func Render(w io.Writer, b view.Builder) error {
	if err := b.Theme().Validate(); err != nil {
		return fmt.Errorf("page: %w", err)
	}
	if err := Document(b).Render(w); err != nil {
		return fmt.Errorf("page: render: %w", err)
	}
	return nil
}
