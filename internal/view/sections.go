package view

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Rohancherukuri/portfolio/internal/content"
	"github.com/Rohancherukuri/portfolio/internal/theme"
)

// ScrollScript is the only script the page runs.
const ScrollScript = "window.scrollTo({ top: 0, behavior: 'smooth' });"

// Section ids, in page order.
const (
	SectionHero       = "hero"
	SectionAbout      = "about"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionSkills     = "skills"
	SectionEducation  = "education"
	SectionContact    = "contact"
	SectionFooter     = "footer"
)

// ScrollTopID identifies the scroll-to-top button.
const ScrollTopID = "scroll-top"

func (b Builder) section(id, title string, children ...g.Node) g.Node {
	return Section(
		ID(id),
		Class("section"),
		b.SectionHeading(title),
		g.Group(children),
	)
}

// Header is the hero: a soft radial glow behind the name, role, contact
// facts and profile links, which fade in once on load.
func (b Builder) Header() g.Node {
	p := b.profile

	return Header(
		ID(SectionHero),
		Class("hero"),
		Div(Class("hero__glow"), g.Attr("aria-hidden", "true")),
		Div(
			Class("hero__row"),
			Div(
				Class("hero__intro"),
				gradientText(H1, p.Name, "2.8rem"),
				P(Class("hero__role"), g.Text(p.Role)),
				Div(
					Class("hero__facts"),
					b.fact("map-pin", p.Location),
					b.fact("mail", p.Email),
					g.Iff(p.Phone != "", func() g.Node { return b.fact("phone", p.Phone) }),
				),
				Div(
					Class("hero__links"),
					g.Group(g.Map(p.Links, func(l content.SocialLink) g.Node {
						return b.StyledLink(l.Label, l.URL, l.Icon)
					})),
				),
			),
			b.avatar(p.Avatar),
		),
	)
}

func (b Builder) fact(icon, text string) g.Node {
	return Div(
		Class("hero__fact"),
		b.Icon(icon, 16, b.color(theme.TextSecondary)),
		Span(g.Text(text)),
	)
}

func (b Builder) avatar(src content.OptionalURL) g.Node {
	url, ok := src.Get()
	if !ok {
		return nil
	}
	return Div(
		Class("hero__avatar"),
		Img(Class("hero__avatar-img"), Src(url), Alt(b.profile.Name)),
	)
}

// About is a single hover-highlighted card.
func (b Builder) About() g.Node {
	return b.section(SectionAbout, "About Me",
		Div(
			Class("card card--about"),
			P(Class("about__text"), g.Text(b.profile.About)),
		),
	)
}

// ExperienceItem is one work-history card. Hover slides it right.
func (b Builder) ExperienceItem(company, role, dates, description string) g.Node {
	return Article(
		Class("card card--experience"),
		Div(
			Class("card__head"),
			H3(Class("card__title"), g.Text(role)),
			b.Badge(dates, BadgeGray),
		),
		P(Class("experience__company"), g.Text(company)),
		P(Class("card__body"), g.Text(description)),
	)
}

// Experience lists the work history in authored order.
func (b Builder) Experience() g.Node {
	return b.section(SectionExperience, "Work Experience",
		Div(
			Class("stack"),
			g.Group(g.Map(b.profile.Experience, func(e content.Experience) g.Node {
				return b.ExperienceItem(e.Company, e.Role, e.Dates, e.Description)
			})),
		),
	)
}

// ProjectCard is one gallery card. tech is split on ", " into tags and the
// external-link icon appears only when link is present. Hover lifts it.
func (b Builder) ProjectCard(title, description, tech string, link content.OptionalURL) g.Node {
	return Article(
		Class("card card--project"),
		Div(
			Class("card__head"),
			H3(Class("card__title"), g.Text(title)),
			b.projectLink(title, link),
		),
		P(Class("card__body"), g.Text(description)),
		Div(
			Class("tags"),
			g.Group(g.Map(content.SplitTech(tech), func(tag string) g.Node {
				return b.Badge(tag, BadgePurple)
			})),
		),
	)
}

func (b Builder) projectLink(title string, link content.OptionalURL) g.Node {
	href, ok := link.Get()
	if !ok {
		return nil
	}
	return b.iconLink("Open "+title, href, "external-link", 20, b.color(theme.Accent))
}

// Projects is the responsive project grid.
func (b Builder) Projects() g.Node {
	return b.section(SectionProjects, "Featured Projects",
		Div(
			Class("grid grid--projects"),
			g.Group(g.Map(b.profile.Projects, func(p content.Project) g.Node {
				return b.ProjectCard(p.Title, p.Description, p.TechStack, p.Link)
			})),
		),
	)
}

// SkillCategory is an icon and title over a wrapped row of skill badges.
func (b Builder) SkillCategory(title string, skills []string, icon string) g.Node {
	return Article(
		Class("card card--skill"),
		Div(
			Class("skill__head"),
			b.Icon(icon, 24, b.color(theme.Accent)),
			H3(Class("skill__title"), g.Text(title)),
		),
		Div(
			Class("tags"),
			g.Group(g.Map(skills, func(s string) g.Node {
				return b.Badge(s, BadgeBlue)
			})),
		),
	)
}

// Skills is the responsive skill-category grid.
func (b Builder) Skills() g.Node {
	return b.section(SectionSkills, "Technical Skills",
		Div(
			Class("grid grid--skills"),
			g.Group(g.Map(b.profile.Skills, func(c content.SkillCategory) g.Node {
				return b.SkillCategory(c.Title, c.Skills, c.Icon)
			})),
		),
	)
}

// Education is a static card with no hover state.
func (b Builder) Education() g.Node {
	e := b.profile.Education
	when := e.Dates
	if e.Location != "" {
		when += " • " + e.Location
	}
	return b.section(SectionEducation, "Education",
		Div(
			Class("card card--static"),
			Div(
				Class("education"),
				b.Icon(e.Icon, 40, b.color(theme.Accent)),
				Div(
					Class("education__text"),
					H3(Class("card__title"), g.Text(e.Degree)),
					P(Class("education__institution"), g.Text(e.Institution)),
					P(Class("education__when"), g.Text(when)),
				),
			),
		),
	)
}

// Contact is the centred call to action over a faint two-colour gradient.
func (b Builder) Contact() g.Node {
	c := b.profile.Contact
	bg := fmt.Sprintf("background: linear-gradient(135deg, %s 0%%, %s 100%%)",
		theme.Alpha(b.color(theme.Accent), "10"),
		theme.Alpha(b.color(theme.GradientEnd), "10"))

	return b.section(SectionContact, "Get In Touch",
		Div(
			Class("card contact"),
			Style(bg),
			P(Class("contact__blurb"), g.Text(c.Blurb)),
			Div(
				Class("contact__actions"),
				g.Group(g.Map(c.Actions, func(a content.Action) g.Node {
					return A(
						Class("button button--"+string(a.Variant)),
						Href(a.URL),
						externalAttrs(a.URL),
						g.Text(a.Label),
					)
				})),
			),
		),
	)
}

// Footer carries the copyright line, computed from the builder clock on every
// call, and icon-only profile links.
func (b Builder) Footer() g.Node {
	p := b.profile
	copyright := fmt.Sprintf("© %d %s", b.now().Year(), p.Name)
	if p.Meta.Credit != "" {
		copyright += " • " + p.Meta.Credit
	}
	muted := b.color(theme.TextSecondary)

	return Footer(
		ID(SectionFooter),
		Class("footer"),
		Hr(Class("footer__rule")),
		P(Class("footer__copy"), g.Text(copyright)),
		Div(
			Class("footer__links"),
			g.Group(g.Map(p.Links, func(l content.SocialLink) g.Node {
				return b.iconLink(l.Label, l.URL, l.Icon, 20, muted)
			})),
			b.iconLink("Email", content.Mailto(p.Email), "mail", 20, muted),
		),
	)
}

// ScrollToTop is the fixed bottom-right button that smooth-scrolls the
// document back to the top.
func (b Builder) ScrollToTop() g.Node {
	return Button(
		ID(ScrollTopID),
		Class("scroll-top"),
		Type("button"),
		g.Attr("aria-label", "Scroll to top"),
		g.Attr("onclick", ScrollScript),
		b.Icon("arrow-up", 20, ""),
	)
}
