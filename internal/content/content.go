// Package content holds the data the page is built from: who the portfolio
// belongs to, what they worked on and how to reach them.
package content

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile is everything the page renders.
type Profile struct {
	Meta       Meta              `yaml:"meta" validate:"required"`
	Name       string            `yaml:"name" validate:"required"`
	Role       string            `yaml:"role" validate:"required"`
	Location   string            `yaml:"location" validate:"required"`
	Email      string            `yaml:"email" validate:"required,email"`
	Phone      string            `yaml:"phone"`
	Avatar     OptionalURL       `yaml:"avatar" validate:"omitempty,href"`
	Links      []SocialLink      `yaml:"links" validate:"dive"`
	About      string            `yaml:"about" validate:"required"`
	Experience []Experience      `yaml:"experience" validate:"dive"`
	Projects   []Project         `yaml:"projects" validate:"dive"`
	Skills     []SkillCategory   `yaml:"skills" validate:"dive"`
	Education  Education         `yaml:"education" validate:"required"`
	Contact    Contact           `yaml:"contact" validate:"required"`
	Palette    map[string]string `yaml:"palette" validate:"omitempty,dive,keys,role,endkeys,rgbhex"`
}

// Meta is the page metadata handed to the host.
type Meta struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Language    string `yaml:"language"`
	Credit      string `yaml:"credit"`
}

// SocialLink is an external profile shown in the header and footer.
type SocialLink struct {
	Label string `yaml:"label" validate:"required"`
	URL   string `yaml:"url" validate:"required,href"`
	Icon  string `yaml:"icon" validate:"required,icon"`
}

// Experience is one work-history entry.
type Experience struct {
	Company     string `yaml:"company" validate:"required"`
	Role        string `yaml:"role" validate:"required"`
	Dates       string `yaml:"dates" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

// Project is one gallery card. TechStack is a ", " separated list.
type Project struct {
	Title       string      `yaml:"title" validate:"required"`
	Description string      `yaml:"description" validate:"required"`
	TechStack   string      `yaml:"tech"`
	Link        OptionalURL `yaml:"link" validate:"omitempty,href"`
}

// SplitTech splits a ", " separated tech list in order. An empty string
// yields no tags.
func SplitTech(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ", ")
}

// SkillCategory groups skills under an icon and title.
type SkillCategory struct {
	Title  string   `yaml:"title" validate:"required"`
	Skills []string `yaml:"skills" validate:"dive,required"`
	Icon   string   `yaml:"icon" validate:"required,icon"`
}

// Education is the single education card.
type Education struct {
	Degree      string `yaml:"degree" validate:"required"`
	Institution string `yaml:"institution" validate:"required"`
	Dates       string `yaml:"dates" validate:"required"`
	Location    string `yaml:"location"`
	Icon        string `yaml:"icon" validate:"required,icon"`
}

// ActionVariant selects the button look of a contact action.
type ActionVariant string

const (
	ActionSolid   ActionVariant = "solid"
	ActionOutline ActionVariant = "outline"
)

// Action is one call-to-action link in the contact card.
type Action struct {
	Label   string        `yaml:"label" validate:"required"`
	URL     string        `yaml:"url" validate:"required,href"`
	Variant ActionVariant `yaml:"variant" validate:"oneof=solid outline"`
}

// Contact is the call-to-action section.
type Contact struct {
	Blurb   string   `yaml:"blurb" validate:"required"`
	Actions []Action `yaml:"actions" validate:"min=1,dive"`
}

// OptionalURL is a link that is either present or absent. The zero value is
// absent.
type OptionalURL struct {
	url     string
	present bool
}

// Some returns a present link.
func Some(url string) OptionalURL {
	return OptionalURL{url: url, present: true}
}

// None returns an absent link.
func None() OptionalURL {
	return OptionalURL{}
}

// Get returns the URL and whether it is present.
func (o OptionalURL) Get() (string, bool) {
	return o.url, o.present
}

// Present reports whether a link was supplied.
func (o OptionalURL) Present() bool {
	return o.present
}

// String returns the URL or "".
func (o OptionalURL) String() string {
	return o.url
}

// UnmarshalYAML treats a missing, null or blank value as absent.
func (o *OptionalURL) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*o = None()
		return nil
	}
	*o = Some(s)
	return nil
}

// External reports whether href leaves the site in a new browsing context.
// mailto: and in-page anchors do not.
func External(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

// Mailto builds a mailto: href.
func Mailto(email string) string {
	return "mailto:" + email
}
