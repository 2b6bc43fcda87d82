// Package icons lists the lucide icon identifiers the site may reference.
// Icons are drawn client-side by iconify; the server only ever emits names.
package icons

// Set is the iconify collection prefix.
const Set = "lucide"

// Script loads the iconify runtime that swaps placeholders for SVGs.
const Script = "https://code.iconify.design/3/3.1.1/iconify.min.js"

var known = map[string]struct{}{
	"arrow-up":       {},
	"bar-chart-3":    {},
	"briefcase":      {},
	"cloud":          {},
	"code":           {},
	"cpu":            {},
	"database":       {},
	"external-link":  {},
	"github":         {},
	"globe":          {},
	"graduation-cap": {},
	"linkedin":       {},
	"mail":           {},
	"map-pin":        {},
	"phone":          {},
	"terminal":       {},
	"twitter":        {},
	"wrench":         {},
}

// Known reports whether name resolves in the icon set.
func Known(name string) bool {
	_, ok := known[name]
	return ok
}

// ID is the iconify identifier for name, e.g. "lucide:github".
func ID(name string) string {
	return Set + ":" + name
}
