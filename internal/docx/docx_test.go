package docx

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Hello {name}, your id is { id }</w:t></w:r></w:p>
<w:p><w:r><w:t>Regards, {sender}</w:t></w:r></w:p>
</w:body>
</w:document>`

func buildTestTemplate(t *testing.T, documentXML string) []byte {
	t.Helper()

	var b bytes.Buffer
	w := zip.NewWriter(&b)
	for name, content := range map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types/>`,
		documentPart:          documentXML,
	} {
		f, err := w.Create(name)
		assert.NoError(t, err)
		_, err = f.Write([]byte(content))
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())
	return b.Bytes()
}

func TestFullText(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	template := buildTestTemplate(t, testDocumentXML)
	text, err := r.FullText(template)
	assert.NoError(t, err)
	assert.Contains(t, text, "Hello {name}, your id is { id }")
	assert.Contains(t, text, "Regards, {sender}")
}

func TestFullTextNotDocx(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	_, err = r.FullText([]byte("not a zip at all"))
	assert.Error(t, err)

	var b bytes.Buffer
	w := zip.NewWriter(&b)
	_, err = w.Create("something-else.txt")
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	_, err = r.FullText(b.Bytes())
	assert.Equal(t, errNoDocumentPart, err)
}

func TestRender(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	template := buildTestTemplate(t, testDocumentXML)
	document, err := r.Render(template, map[string]string{
		"name":   "Alice & Bob",
		"id":     "42",
		"sender": "<hr>",
	})
	assert.NoError(t, err)

	text, err := r.FullText(document)
	assert.NoError(t, err)
	assert.Contains(t, text, "Hello Alice & Bob, your id is 42")
	assert.Contains(t, text, "Regards, <hr>")
}

func TestRenderMissingValues(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	template := buildTestTemplate(t, testDocumentXML)
	document, err := r.Render(template, map[string]string{})
	assert.NoError(t, err)

	text, err := r.FullText(document)
	assert.NoError(t, err)
	assert.Contains(t, text, "Hello , your id is ")
}

func TestRenderDeterministic(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	template := buildTestTemplate(t, testDocumentXML)
	payload := map[string]string{"name": "Alice", "id": "7", "sender": "Bob"}

	first, err := r.Render(template, payload)
	assert.NoError(t, err)
	second, err := r.Render(template, payload)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderKeepsTemplate(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	template := buildTestTemplate(t, testDocumentXML)
	original := make([]byte, len(template))
	copy(original, template)

	_, err = r.Render(template, map[string]string{"name": "Alice"})
	assert.NoError(t, err)
	assert.Equal(t, original, template)
}
