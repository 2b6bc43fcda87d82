package view

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"

	"github.com/Rohancherukuri/portfolio/internal/content"
	"github.com/Rohancherukuri/portfolio/internal/style"
	"github.com/Rohancherukuri/portfolio/internal/theme"
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
}

func newBuilder(t *testing.T) Builder {
	t.Helper()
	return New(theme.Default(), content.Default(), WithClock(fixedClock))
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, n.Render(&sb))
	return sb.String()
}

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	v, _ := attr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func byClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool { return hasClass(n, class) }
}

func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func TestGradientText(t *testing.T) {
	b := newBuilder(t)
	out := render(t, b.GradientText("About Me", "2rem"))

	assert.Equal(t, `<h2 class="gradient-text" style="font-size: 2rem">About Me</h2>`, out)
}

func TestStyledLink(t *testing.T) {
	b := newBuilder(t)

	t.Run("external with icon", func(t *testing.T) {
		doc := parse(t, render(t, b.StyledLink("GitHub", "https://github.com/x", "github")))
		links := findAll(doc, byClass("styled-link"))
		require.Len(t, links, 1)

		target, _ := attr(links[0], "target")
		rel, _ := attr(links[0], "rel")
		assert.Equal(t, "_blank", target)
		assert.Equal(t, "noopener noreferrer", rel)

		icons := findAll(links[0], byClass("iconify"))
		require.Len(t, icons, 1)
		id, _ := attr(icons[0], "data-icon")
		assert.Equal(t, "lucide:github", id)
		assert.Equal(t, "GitHub", text(links[0]))
	})

	t.Run("mailto without icon", func(t *testing.T) {
		doc := parse(t, render(t, b.StyledLink("Email", "mailto:a@b.c", "")))
		links := findAll(doc, byClass("styled-link"))
		require.Len(t, links, 1)

		_, hasTarget := attr(links[0], "target")
		assert.False(t, hasTarget)
		assert.Empty(t, findAll(links[0], byClass("iconify")))
	})
}

func TestIconPanicsOnUnknownName(t *testing.T) {
	b := newBuilder(t)
	assert.Panics(t, func() { b.Icon("not-an-icon", 16, "") })
}

func TestIconSizeAndColor(t *testing.T) {
	b := newBuilder(t)
	out := render(t, b.Icon("cpu", 24, "#6366F1"))

	assert.Contains(t, out, `data-width="24"`)
	assert.Contains(t, out, `style="width: 24px; height: 24px; color: #6366F1"`)
}

func TestProjectCard(t *testing.T) {
	b := newBuilder(t)

	t.Run("link present", func(t *testing.T) {
		doc := parse(t, render(t, b.ProjectCard("Lakehouse", "Columnar.", "Go, Parquet, DuckDB",
			content.Some("https://github.com/ada/lakehouse"))))

		links := findAll(doc, byClass("icon-link"))
		require.Len(t, links, 1)
		href, _ := attr(links[0], "href")
		assert.Equal(t, "https://github.com/ada/lakehouse", href)

		var tags []string
		for _, n := range findAll(doc, byClass("badge--purple")) {
			tags = append(tags, text(n))
		}
		assert.Equal(t, []string{"Go", "Parquet", "DuckDB"}, tags)
	})

	t.Run("link absent and no tech", func(t *testing.T) {
		doc := parse(t, render(t, b.ProjectCard("Notes", "Private.", "", content.None())))

		assert.Empty(t, findAll(doc, byClass("icon-link")))
		assert.Empty(t, findAll(doc, byClass("badge")))
		assert.Len(t, findAll(doc, byClass("tags")), 1)
	})
}

func TestExperienceItem(t *testing.T) {
	b := newBuilder(t)
	doc := parse(t, render(t, b.ExperienceItem("Archimydes", "ML Engineer", "2024 - 2025", "Built things.")))

	badges := findAll(doc, byClass("badge--gray"))
	require.Len(t, badges, 1)
	assert.Equal(t, "2024 - 2025", text(badges[0]))
	assert.Equal(t, "Archimydes", text(findAll(doc, byClass("experience__company"))[0]))
}

func TestSkillCategoryKeepsSkillOrder(t *testing.T) {
	b := newBuilder(t)
	doc := parse(t, render(t, b.SkillCategory("Cloud", []string{"AWS", "GCP", "Docker"}, "cloud")))

	var got []string
	for _, n := range findAll(doc, byClass("badge--blue")) {
		got = append(got, text(n))
	}
	assert.Equal(t, []string{"AWS", "GCP", "Docker"}, got)
}

func TestSectionsCarryHeadings(t *testing.T) {
	b := newBuilder(t)
	tests := []struct {
		id    string
		title string
		node  g.Node
	}{
		{SectionAbout, "About Me", b.About()},
		{SectionExperience, "Work Experience", b.Experience()},
		{SectionProjects, "Featured Projects", b.Projects()},
		{SectionSkills, "Technical Skills", b.Skills()},
		{SectionEducation, "Education", b.Education()},
		{SectionContact, "Get In Touch", b.Contact()},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			doc := parse(t, render(t, tt.node))
			sections := findAll(doc, func(n *html.Node) bool {
				id, _ := attr(n, "id")
				return id == tt.id
			})
			require.Len(t, sections, 1)

			headings := findAll(sections[0], byClass("gradient-text"))
			require.NotEmpty(t, headings)
			assert.Equal(t, tt.title, text(headings[0]))
			assert.Len(t, findAll(sections[0], byClass("section-heading__bar")), 1)
		})
	}
}

func TestHeroOmitsMissingPhoneAndAvatar(t *testing.T) {
	p := content.Default()
	p.Phone = ""
	b := New(theme.Default(), p, WithClock(fixedClock))

	out := render(t, b.Header())
	assert.NotContains(t, out, "lucide:phone")
	assert.NotContains(t, out, "hero__avatar")

	p.Avatar = content.Some("https://example.com/me.png")
	out = render(t, New(theme.Default(), p).Header())
	assert.Contains(t, out, `src="https://example.com/me.png"`)
}

func TestContactActions(t *testing.T) {
	b := newBuilder(t)
	doc := parse(t, render(t, b.Contact()))

	solid := findAll(doc, byClass("button--solid"))
	outline := findAll(doc, byClass("button--outline"))
	require.Len(t, solid, 1)
	require.Len(t, outline, 1)

	href, _ := attr(solid[0], "href")
	assert.Equal(t, "mailto:rohanoxob3000@gmail.com", href)
	target, _ := attr(outline[0], "target")
	assert.Equal(t, "_blank", target)
}

func TestFooterUsesClockYear(t *testing.T) {
	b := newBuilder(t)
	doc := parse(t, render(t, b.Footer()))

	line := findAll(doc, byClass("footer__copy"))
	require.Len(t, line, 1)
	assert.Equal(t, "© 2026 Rohan Cherukuri • Built with Go", text(line[0]))

	later := New(theme.Default(), content.Default(), WithClock(func() time.Time {
		return time.Date(2031, time.January, 1, 0, 0, 0, 0, time.UTC)
	}))
	assert.Contains(t, render(t, later.Footer()), "© 2031 ")
}

func TestScrollToTop(t *testing.T) {
	b := newBuilder(t)
	doc := parse(t, render(t, b.ScrollToTop()))

	buttons := findAll(doc, func(n *html.Node) bool { return n.Data == "button" })
	require.Len(t, buttons, 1)
	onclick, _ := attr(buttons[0], "onclick")
	assert.Equal(t, ScrollScript, onclick)
	id, _ := attr(buttons[0], "id")
	assert.Equal(t, ScrollTopID, id)
}

func TestBuildersAreIdempotent(t *testing.T) {
	b := newBuilder(t)
	nodes := map[string]func() g.Node{
		"header":   b.Header,
		"projects": b.Projects,
		"footer":   b.Footer,
	}
	for name, build := range nodes {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, render(t, build()), render(t, build()))
		})
	}
}

func TestNoInlineEventHandlersBesideScroll(t *testing.T) {
	b := newBuilder(t)
	for _, n := range []g.Node{b.Header(), b.About(), b.Projects(), b.Skills(), b.Contact(), b.Footer()} {
		out := render(t, n)
		assert.NotContains(t, out, "onmouseover")
		assert.NotContains(t, out, "onmouseenter")
		assert.NotContains(t, out, "onclick")
	}
}

func TestStylesheetHoverBlocks(t *testing.T) {
	css := newBuilder(t).Stylesheet().String()

	for _, sel := range []string{
		".styled-link:hover {",
		".card--about:hover {",
		".card--experience:hover {",
		".card--project:hover {",
		".card--skill:hover {",
		".hero__avatar:hover {",
		".hero__avatar::before {",
		".scroll-top:hover {",
	} {
		assert.Contains(t, css, sel)
	}
	assert.NotContains(t, css, ".card--static:hover")
	assert.Contains(t, css, "transform: translateX(8px);")
	assert.Contains(t, css, "transform: translateY(-4px);")
	assert.Contains(t, css, "@media (min-width: "+BreakpointLg+") {")
}

func TestStylesheetFollowsPalette(t *testing.T) {
	base := theme.Default()
	p, err := base.Palette.With(map[theme.Role]string{
		theme.Accent:        "#10B981",
		theme.GradientStart: "#10B981",
	})
	require.NoError(t, err)

	css := New(base.WithPalette(p), content.Default()).Stylesheet().String()
	assert.Contains(t, css, "color: #10B981;")
	assert.Contains(t, css, "0 10px 30px #10B98120")
	assert.NotContains(t, css, "#6366F1")
}

func rule(t *testing.T, b Builder, selector string) style.Rule {
	t.Helper()
	for _, r := range b.Stylesheet().Rules {
		if r.Selector == selector {
			return r
		}
	}
	require.Failf(t, "missing rule", "no rule for %s", selector)
	return style.Rule{}
}

func TestNegativeLayersStayInsideTheirContainer(t *testing.T) {
	b := newBuilder(t)

	tests := []struct {
		container string
		layer     style.Decls
	}{
		{".hero", rule(t, b, ".hero__glow").Decls},
		{".hero__avatar", rule(t, b, ".hero__avatar").Before},
	}
	for _, tt := range tests {
		t.Run(tt.container, func(t *testing.T) {
			z, ok := tt.layer.Get("z-index")
			require.True(t, ok)
			require.Equal(t, "-1", z)

			isolation, ok := rule(t, b, tt.container).Decls.Get("isolation")
			require.True(t, ok, "%s must start its own stacking context", tt.container)
			assert.Equal(t, "isolate", isolation)
		})
	}
}

func TestHeroGlowAnimatesFromStylesheet(t *testing.T) {
	b := newBuilder(t)

	glow := rule(t, b, ".hero__glow").Decls
	image, ok := glow.Get("background-image")
	require.True(t, ok)
	assert.Equal(t, "radial-gradient(circle at top, #6366F133, transparent 70%)", image)
	size, _ := glow.Get("background-size")
	assert.Equal(t, "200% 200%", size)
	_, hasShorthand := glow.Get("background")
	assert.False(t, hasShorthand)

	doc := parse(t, render(t, b.Header()))
	glows := findAll(doc, byClass("hero__glow"))
	require.Len(t, glows, 1)
	_, inline := attr(glows[0], "style")
	assert.False(t, inline, "inline styles would override the animated background size")
}
