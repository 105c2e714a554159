package filename

import (
	"regexp"
)

// Namer derives file-system-safe base names from seed values.
type Namer struct {
	unsafeReg *regexp.Regexp
}

// New ...
func New() (n *Namer, err error) {
	n = &Namer{}
	n.unsafeReg, err = regexp.Compile(unsafeRegexp)
	return
}

// Derive replaces every character outside [A-Za-z0-9._-] with an
// underscore and truncates the result to 80 characters. Derive never
// invents a name: an empty seed stays empty, fallback seeds are the
// caller's job.
func (n *Namer) Derive(seed string) string {
	name := n.unsafeReg.ReplaceAllString(seed, "_")
	if len(name) > maxLength {
		name = name[:maxLength]
	}
	return name
}
