package content

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a YAML content file, replacing the built-in content entirely.
// An empty path returns Default().
func Load(path string) (Profile, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, &ParseError{Path: path, Err: err}
	}

	p, err := Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return Profile{}, err
	}
	return p, nil
}

// Parse decodes and validates YAML content. Unknown keys are rejected so a
// typo does not silently drop a section.
func Parse(data []byte) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Profile{}, &ParseError{Path: "<content>", Line: extractLine(err), Err: err}
	}
	if err := Validate(&p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
