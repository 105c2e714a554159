package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"io/ioutil"
	"regexp"
	"strings"
)

// Renderer fills in docx templates.
//
// A docx file is a zip archive whose visible text lives in <w:t> runs
// of word/document.xml. Render substitutes {placeholder} tokens in that
// part and repacks the archive, every other part is copied as is.
// Every call re-reads the template bytes, the template is never mutated.
type Renderer struct {
	placeholderReg *regexp.Regexp
}

// New ...
func New() (r *Renderer, err error) {
	r = &Renderer{}
	r.placeholderReg, err = regexp.Compile(placeholderRegexp)
	return
}

// FullText returns the text content of the template for placeholder
// discovery: the concatenated <w:t> runs, one line per paragraph.
func (r *Renderer) FullText(template []byte) (text string, err error) {
	document, err := r.documentXML(template)
	if err != nil {
		return
	}

	var b strings.Builder
	decoder := xml.NewDecoder(strings.NewReader(document))
	inRun := false
	for {
		token, errToken := decoder.Token()
		if errToken == io.EOF {
			break
		}
		if errToken != nil {
			err = fmt.Errorf("document part: %s", errToken)
			return
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inRun = false
			}
			if t.Name.Local == "p" {
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inRun {
				b.Write(t)
			}
		}
	}
	text = b.String()
	return
}

// Render substitutes payload values for {placeholder} tokens and
// returns the rendered document. Placeholders missing from payload
// resolve to the empty string.
func (r *Renderer) Render(template []byte, payload map[string]string) (document []byte, err error) {
	reader, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		err = fmt.Errorf("open template: %s", err)
		return
	}

	filled := ""
	found := false
	for _, part := range reader.File {
		if part.Name == documentPart {
			var content string
			if content, err = readPart(part); err != nil {
				return
			}
			filled = r.placeholderReg.ReplaceAllStringFunc(content, func(token string) string {
				name := r.placeholderReg.FindStringSubmatch(token)[1]
				return escape(payload[name])
			})
			found = true
			break
		}
	}
	if !found {
		err = errNoDocumentPart
		return
	}

	var result bytes.Buffer
	writer := zip.NewWriter(&result)
	for _, part := range reader.File {
		var w io.Writer
		if w, err = writer.Create(part.Name); err != nil {
			err = fmt.Errorf("repack %s: %s", part.Name, err)
			return
		}
		if part.Name == documentPart {
			if _, err = w.Write([]byte(filled)); err != nil {
				return
			}
			continue
		}
		var rc io.ReadCloser
		if rc, err = part.Open(); err != nil {
			err = fmt.Errorf("repack %s: %s", part.Name, err)
			return
		}
		_, err = io.Copy(w, rc)
		rc.Close()
		if err != nil {
			return
		}
	}
	if err = writer.Close(); err != nil {
		return
	}
	document = result.Bytes()
	return
}

func (r *Renderer) documentXML(template []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return "", fmt.Errorf("open template: %s", err)
	}
	for _, part := range reader.File {
		if part.Name == documentPart {
			return readPart(part)
		}
	}
	return "", errNoDocumentPart
}

func readPart(part *zip.File) (string, error) {
	rc, err := part.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	data, err := ioutil.ReadAll(rc)
	return string(data), err
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escape(value string) string {
	return escaper.Replace(value)
}
