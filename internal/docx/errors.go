package docx

import (
	"errors"
)

var (
	errNoDocumentPart = errors.New("not a docx file: word/document.xml is missing")
)
