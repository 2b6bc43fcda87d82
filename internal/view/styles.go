package view

import (
	"fmt"

	"github.com/Rohancherukuri/portfolio/internal/style"
	"github.com/Rohancherukuri/portfolio/internal/theme"
)

// Viewport breakpoints shared by the grids and the page container.
const (
	BreakpointSm = "768px"
	BreakpointMd = "1024px"
	BreakpointLg = "1280px"
)

const cardTransition = "all 0.3s ease"

var d = style.D

// Stylesheet returns the component rules, hover variants and responsive
// grids, all derived from the builder's theme.
func (b Builder) Stylesheet() style.Sheet {
	c := b.color
	alpha := func(role theme.Role, a string) string { return theme.Alpha(c(role), a) }
	gradient := func(angle string) string {
		return fmt.Sprintf("linear-gradient(%s, %s, %s)", angle, c(theme.GradientStart), c(theme.GradientEnd))
	}

	var s style.Sheet

	s.Add(
		style.Rule{
			Selector: ".styled-link",
			Decls: style.Decls{
				d("display", "inline-flex"),
				d("align-items", "center"),
				d("gap", "0.5rem"),
				d("color", c(theme.TextSecondary)),
				d("font-size", "0.95rem"),
				d("font-weight", "500"),
				d("text-decoration", "none"),
				d("transition", cardTransition),
			},
			Hover: style.Decls{
				d("color", c(theme.Accent)),
				d("transform", "translateY(-3px) scale(1.05)"),
				d("text-shadow", "0 0 12px "+alpha(theme.Accent, "50")),
			},
		},
		style.Rule{
			Selector: ".gradient-text",
			Decls: style.Decls{
				d("margin", "0 0 0.5rem"),
				d("font-weight", "800"),
				d("line-height", "1.2"),
				d("background-image", fmt.Sprintf("linear-gradient(270deg, %s, %s, %s)",
					c(theme.GradientStart), c(theme.GradientEnd), c(theme.GradientStart))),
				d("background-size", "400% 400%"),
				d("-webkit-background-clip", "text"),
				d("background-clip", "text"),
				d("color", "transparent"),
				d("animation", theme.GradientShift+" 8s ease infinite"),
			},
		},
		style.Rule{
			Selector: ".icon",
			Decls: style.Decls{
				d("display", "inline-block"),
				d("flex-shrink", "0"),
			},
		},
		style.Rule{
			Selector: ".section-heading",
			Decls: style.Decls{
				d("display", "flex"),
				d("flex-direction", "column"),
				d("gap", "0.75rem"),
				d("margin-bottom", "2rem"),
			},
		},
		style.Rule{
			Selector: ".section-heading__bar",
			Decls: style.Decls{
				d("width", "60px"),
				d("height", "3px"),
				d("border-radius", "9999px"),
				d("background", gradient("90deg")),
			},
		},
		style.Rule{
			Selector: ".section",
			Decls: style.Decls{
				d("width", "100%"),
				d("padding", "3rem 0"),
			},
		},
		style.Rule{
			Selector: ".stack",
			Decls: style.Decls{
				d("display", "flex"),
				d("flex-direction", "column"),
				d("gap", "1rem"),
			},
		},
	)

	// Hero.
	s.Add(
		style.Rule{
			Selector: ".hero",
			Decls: style.Decls{
				d("position", "relative"),
				d("isolation", "isolate"),
				d("width", "100%"),
				d("padding-top", "3rem"),
			},
		},
		style.Rule{
			Selector: ".hero__glow",
			Decls: style.Decls{
				d("position", "absolute"),
				d("top", "0"),
				d("left", "0"),
				d("right", "0"),
				d("height", "350px"),
				d("background-image", fmt.Sprintf("radial-gradient(circle at top, %s, transparent 70%%)",
					alpha(theme.GradientStart, "33"))),
				d("background-size", "200% 200%"),
				d("animation", theme.GradientShift+" 20s ease infinite"),
				d("pointer-events", "none"),
				d("z-index", "-1"),
			},
		},
		style.Rule{
			Selector: ".hero__row",
			Decls: style.Decls{
				d("display", "flex"),
				d("align-items", "center"),
				d("justify-content", "space-between"),
				d("gap", "2rem"),
				d("width", "100%"),
				d("padding-bottom", "2rem"),
			},
		},
		style.Rule{
			Selector: ".hero__intro",
			Decls: style.Decls{
				d("display", "flex"),
				d("flex-direction", "column"),
				d("align-items", "flex-start"),
				d("gap", "0.75rem"),
				d("animation", theme.FadeInUp+" 1s ease forwards"),
			},
		},
		style.Rule{
			Selector: ".hero__role",
			Decls: style.Decls{
				d("margin", "0 0 1rem"),
				d("font-size", "1.25rem"),
				d("font-weight", "500"),
				d("color", c(theme.TextSecondary)),
			},
		},
		style.Rule{
			Selector: ".hero__facts",
			Decls: style.Decls{
				d("display", "flex"),
				d("flex-direction", "column"),
				d("gap", "0.75rem"),
			},
		},
		style.Rule{
			Selector: ".hero__fact",
			Decls: style.Decls{
				d("display", "flex"),
				d("align-items", "center"),
				d("gap", "0.5rem"),
				d("font-size", "0.95rem"),
				d("color", c(theme.TextSecondary)),
			},
		},
		style.Rule{
			Selector: ".hero__links",
			Decls: style.Decls{
				d("display", "flex"),
				d("gap", "1rem"),
				d("padding-top", "1rem"),
			},
		},
		style.Rule{
			Selector: ".hero__avatar",
			Decls: style.Decls{
				d("position", "relative"),
				d("isolation", "isolate"),
				d("transition", "transform 0.3s ease"),
			},
			Before: style.Decls{
				d("content", `""`),
				d("position", "absolute"),
				d("inset", "-6px"),
				d("border-radius", "50%"),
				d("background", gradient("135deg")),
				d("background-size", "300% 300%"),
				d("animation", theme.GradientShift+" 6s ease infinite"),
				d("z-index", "-1"),
			},
			Hover: style.Decls{
				d("transform", "scale(1.05)"),
			},
		},
		style.Rule{
			Selector: ".hero__avatar-img",
			Decls: style.Decls{
				d("display", "block"),
				d("width", "160px"),
				d("height", "160px"),
				d("border-radius", "50%"),
				d("border", "3px solid "+c(theme.Accent)),
				d("object-fit", "cover"),
			},
		},
	)

	// Cards.
	s.Add(
		style.Rule{
			Selector: ".card",
			Decls: style.Decls{
				d("padding", "1.5rem"),
				d("background", c(theme.BgCard)),
				d("border", "1px solid "+c(theme.Border)),
				d("border-radius", "12px"),
				d("transition", cardTransition),
			},
		},
		style.Rule{
			Selector: ".card--about",
			Decls:    style.Decls{d("padding", "2rem")},
			Hover: style.Decls{
				d("border-color", c(theme.Accent)),
				d("box-shadow", "0 0 20px "+alpha(theme.Accent, "20")),
			},
		},
		style.Rule{
			Selector: ".card--experience",
			Hover: style.Decls{
				d("transform", "translateX(8px)"),
				d("border-color", c(theme.Accent)),
			},
		},
		style.Rule{
			Selector: ".card--project",
			Hover: style.Decls{
				d("transform", "translateY(-4px)"),
				d("border-color", c(theme.Accent)),
				d("box-shadow", "0 10px 30px "+alpha(theme.Accent, "20")),
			},
		},
		style.Rule{
			Selector: ".card--skill",
			Hover: style.Decls{
				d("border-color", c(theme.Accent)),
				d("box-shadow", "0 4px 20px "+alpha(theme.Accent, "15")),
			},
		},
		style.Rule{
			Selector: ".card--static",
			Decls:    style.Decls{d("padding", "2rem")},
		},
		style.Rule{
			Selector: ".card__head",
			Decls: style.Decls{
				d("display", "flex"),
				d("align-items", "center"),
				d("justify-content", "space-between"),
				d("gap", "1rem"),
				d("margin-bottom", "0.75rem"),
			},
		},
		style.Rule{
			Selector: ".card__title",
			Decls: style.Decls{
				d("margin", "0"),
				d("font-size", "1.3rem"),
				d("font-weight", "600"),
				d("color", c(theme.TextPrimary)),
			},
		},
		style.Rule{
			Selector: ".card__body",
			Decls: style.Decls{
				d("margin", "0.75rem 0"),
				d("font-size", "1rem"),
				d("line-height", "1.7"),
				d("color", c(theme.TextSecondary)),
			},
		},
		style.Rule{
			Selector: ".about__text",
			Decls: style.Decls{
				d("margin", "0"),
				d("font-size", "1.1rem"),
				d("line-height", "1.8"),
				d("text-align", "justify"),
				d("color", c(theme.TextSecondary)),
			},
		},
		style.Rule{
			Selector: ".experience__company",
			Decls: style.Decls{
				d("margin", "0"),
				d("font-size", "1.1rem"),
				d("font-weight", "500"),
				d("color", c(theme.Accent)),
			},
		},
		style.Rule{
			Selector: ".skill__head",
			Decls: style.Decls{
				d("display", "flex"),
				d("align-items", "center"),
				d("gap", "0.75rem"),
				d("margin-bottom", "1rem"),
			},
		},
		style.Rule{
			Selector: ".skill__title",
			Decls: style.Decls{
				d("margin", "0"),
				d("font-size", "1.2rem"),
				d("font-weight", "600"),
			},
		},
		style.Rule{
			Selector: ".education",
			Decls: style.Decls{
				d("display", "flex"),
				d("align-items", "center"),
				d("gap", "1rem"),
			},
		},
		style.Rule{
			Selector: ".education__institution",
			Decls: style.Decls{
				d("margin", "0.5rem 0 0"),
				d("font-size", "1.1rem"),
				d("color", c(theme.TextSecondary)),
			},
		},
		style.Rule{
			Selector: ".education__when",
			Decls: style.Decls{
				d("margin", "0.25rem 0 0"),
				d("font-size", "0.95rem"),
				d("color", c(theme.TextSecondary)),
			},
		},
	)

	// Badges and tag rows.
	s.Add(
		style.Rule{
			Selector: ".tags",
			Decls: style.Decls{
				d("display", "flex"),
				d("flex-wrap", "wrap"),
				d("gap", "0.75rem"),
			},
		},
		style.Rule{
			Selector: ".badge",
			Decls: style.Decls{
				d("display", "inline-flex"),
				d("align-items", "center"),
				d("white-space", "nowrap"),
				d("padding", "0.3rem 0.8rem"),
				d("border-radius", "6px"),
				d("font-size", "0.85rem"),
				d("font-weight", "500"),
			},
		},
		style.Rule{
			Selector: ".badge--gray",
			Decls: style.Decls{
				d("padding", "0.5rem 1rem"),
				d("background", alpha(theme.TextSecondary, "1F")),
				d("color", c(theme.TextSecondary)),
			},
		},
		style.Rule{
			Selector: ".badge--purple",
			Decls: style.Decls{
				d("background", alpha(theme.GradientEnd, "26")),
				d("color", c(theme.TextPrimary)),
			},
		},
		style.Rule{
			Selector: ".badge--blue",
			Decls: style.Decls{
				d("padding", "0.4rem 1rem"),
				d("background", alpha(theme.Accent, "26")),
				d("color", c(theme.AccentHover)),
			},
		},
	)

	// Grids: projects 1 -> 2 columns, skills 1 -> 2 -> 3 columns.
	twoCols := d("grid-template-columns", "repeat(2, minmax(0, 1fr))")
	s.Add(style.Rule{
		Selector: ".grid",
		Decls: style.Decls{
			d("display", "grid"),
			d("grid-template-columns", "minmax(0, 1fr)"),
			d("gap", "1rem"),
		},
	})
	s.AddMedia(BreakpointSm, style.Rule{Selector: ".grid--skills", Decls: style.Decls{twoCols}})
	s.AddMedia(BreakpointMd, style.Rule{Selector: ".grid--projects", Decls: style.Decls{twoCols}})
	s.AddMedia(BreakpointLg, style.Rule{
		Selector: ".grid--skills",
		Decls:    style.Decls{d("grid-template-columns", "repeat(3, minmax(0, 1fr))")},
	})

	// Contact, buttons and footer.
	s.Add(
		style.Rule{
			Selector: ".contact",
			Decls: style.Decls{
				d("display", "flex"),
				d("flex-direction", "column"),
				d("align-items", "center"),
				d("gap", "1rem"),
				d("padding", "3rem"),
			},
		},
		style.Rule{
			Selector: ".contact__blurb",
			Decls: style.Decls{
				d("margin", "0"),
				d("font-size", "1.1rem"),
				d("text-align", "center"),
				d("color", c(theme.TextSecondary)),
			},
		},
		style.Rule{
			Selector: ".contact__actions",
			Decls: style.Decls{
				d("display", "flex"),
				d("flex-wrap", "wrap"),
				d("justify-content", "center"),
				d("gap", "1rem"),
			},
		},
		style.Rule{
			Selector: ".button",
			Decls: style.Decls{
				d("display", "inline-flex"),
				d("align-items", "center"),
				d("height", "40px"),
				d("padding", "0 1.25rem"),
				d("border-radius", "8px"),
				d("font-size", "1rem"),
				d("font-weight", "500"),
				d("text-decoration", "none"),
				d("transition", cardTransition),
			},
		},
		style.Rule{
			Selector: ".button--solid",
			Decls: style.Decls{
				d("background", c(theme.Accent)),
				d("color", c(theme.TextPrimary)),
				d("border", "1px solid "+c(theme.Accent)),
			},
			Hover: style.Decls{
				d("background", c(theme.AccentHover)),
				d("border-color", c(theme.AccentHover)),
			},
		},
		style.Rule{
			Selector: ".button--outline",
			Decls: style.Decls{
				d("background", "transparent"),
				d("color", c(theme.AccentHover)),
				d("border", "1px solid "+c(theme.Accent)),
			},
			Hover: style.Decls{
				d("background", alpha(theme.Accent, "1A")),
			},
		},
		style.Rule{
			Selector: ".icon-link",
			Decls: style.Decls{
				d("display", "inline-flex"),
				d("text-decoration", "none"),
			},
		},
		style.Rule{
			Selector: ".footer",
			Decls: style.Decls{
				d("display", "flex"),
				d("flex-direction", "column"),
				d("align-items", "center"),
				d("gap", "1rem"),
				d("width", "100%"),
				d("padding-bottom", "3rem"),
			},
		},
		style.Rule{
			Selector: ".footer__rule",
			Decls: style.Decls{
				d("width", "100%"),
				d("margin", "2rem 0"),
				d("border", "none"),
				d("border-top", "1px solid "+c(theme.Border)),
			},
		},
		style.Rule{
			Selector: ".footer__copy",
			Decls: style.Decls{
				d("margin", "0"),
				d("font-size", "0.9rem"),
				d("color", c(theme.TextSecondary)),
			},
		},
		style.Rule{
			Selector: ".footer__links",
			Decls: style.Decls{
				d("display", "flex"),
				d("justify-content", "center"),
				d("gap", "1rem"),
			},
		},
		style.Rule{
			Selector: ".scroll-top",
			Decls: style.Decls{
				d("position", "fixed"),
				d("bottom", "2rem"),
				d("right", "2rem"),
				d("z-index", "999"),
				d("display", "inline-flex"),
				d("align-items", "center"),
				d("justify-content", "center"),
				d("width", "48px"),
				d("height", "48px"),
				d("border", "none"),
				d("border-radius", "9999px"),
				d("background", c(theme.Accent)),
				d("color", c(theme.TextPrimary)),
				d("box-shadow", "0 4px 20px rgba(0,0,0,0.3)"),
				d("cursor", "pointer"),
				d("transition", cardTransition),
			},
			Hover: style.Decls{
				d("background", c(theme.AccentHover)),
			},
		},
	)

	return s
}
