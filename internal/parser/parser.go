package parser

import (
	"regexp"
	"strings"
)

// Parser of file types.
type Parser struct {
	typeRegexp *regexp.Regexp
}

// New ...
func New() (p *Parser, err error) {
	p = &Parser{}
	p.typeRegexp, err = regexp.Compile(typeRegexp)
	return
}

// Type returns the type of a file by its name. Only docx templates and
// xlsx/xls datasets are known.
func (p *Parser) Type(filename string) (string, error) {
	filename = strings.ToLower(filename)
	if submatchList := p.typeRegexp.FindAllStringSubmatch(filename, -1); len(submatchList) == 1 && len(submatchList[0]) == 2 {
		return submatchList[0][1], nil
	}
	return "", errTypeNotDefined
}
