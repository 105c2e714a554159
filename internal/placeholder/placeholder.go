package placeholder

import (
	"regexp"
)

// Extractor of placeholder names from template text.
type Extractor struct {
	placeholderReg *regexp.Regexp
}

// New ...
func New() (e *Extractor, err error) {
	e = &Extractor{}
	e.placeholderReg, err = regexp.Compile(placeholderRegexp)
	return
}

// Extract returns the distinct placeholder names found in text,
// left to right, in discovery order. Repeated tokens are reported once.
func (e *Extractor) Extract(text string) []string {
	names := make([]string, 0)
	seen := make(map[string]struct{})
	for _, match := range e.placeholderReg.FindAllStringSubmatch(text, -1) {
		name := match[1]
		if _, isExist := seen[name]; isExist {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
