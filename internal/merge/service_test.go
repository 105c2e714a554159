package merge_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/geoirb/go-mailmerge/internal/batch"
	"github.com/geoirb/go-mailmerge/internal/docx"
	"github.com/geoirb/go-mailmerge/internal/emailjs"
	"github.com/geoirb/go-mailmerge/internal/filename"
	"github.com/geoirb/go-mailmerge/internal/merge"
	"github.com/geoirb/go-mailmerge/internal/parser"
	"github.com/geoirb/go-mailmerge/internal/path"
	"github.com/geoirb/go-mailmerge/internal/placeholder"
	"github.com/geoirb/go-mailmerge/internal/rowrange"
	"github.com/geoirb/go-mailmerge/internal/xlsx"
)

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Dear {name}, you owe {amount}.</w:t></w:r></w:p>
</w:body>
</w:document>`

type stubSender struct {
	sent     []emailjs.Message
	failFor  string
	lastAuth emailjs.Credentials
}

func (s *stubSender) Send(ctx context.Context, auth emailjs.Credentials, msg emailjs.Message) error {
	s.lastAuth = auth
	if msg.ToEmail == s.failFor {
		return errors.New("delivery refused")
	}
	s.sent = append(s.sent, msg)
	return nil
}

func writeTemplate(t *testing.T, dir string) {
	t.Helper()

	var b bytes.Buffer
	w := zip.NewWriter(&b)
	f, err := w.Create("word/document.xml")
	assert.NoError(t, err)
	_, err = f.Write([]byte(testDocumentXML))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, ioutil.WriteFile(filepath.Join(dir, "letter.docx"), b.Bytes(), 0644))
}

func writeDataset(t *testing.T, dir string) {
	t.Helper()

	f := excelize.NewFile()
	cells := map[string]interface{}{
		"A1": "Name", "B1": "Email", "C1": "Amount",
		"A2": "Alice", "B2": "alice@example.com", "C2": "10",
		"A3": "Bob", "B3": "", "C3": "20",
		"A4": "Carol", "B4": "carol@example.com", "C4": "30",
	}
	for axis, value := range cells {
		assert.NoError(t, f.SetCellValue("Sheet1", axis, value))
	}
	var b bytes.Buffer
	assert.NoError(t, f.Write(&b))
	assert.NoError(t, ioutil.WriteFile(filepath.Join(dir, "recipients.xlsx"), b.Bytes(), 0644))
}

func newTestService(t *testing.T, sender *stubSender) (merge.Service, string) {
	t.Helper()

	dir := t.TempDir()
	writeTemplate(t, dir)
	writeDataset(t, dir)

	pathBuilder, err := path.NewBuilder(dir, dir, dir, func() string { return "uuid" })
	assert.NoError(t, err)
	typeParser, err := parser.New()
	assert.NoError(t, err)
	renderer, err := docx.New()
	assert.NoError(t, err)
	extractor, err := placeholder.New()
	assert.NoError(t, err)
	namer, err := filename.New()
	assert.NoError(t, err)

	logger := log.NewNopLogger()
	svc := merge.NewService(
		pathBuilder,
		typeParser,
		renderer,
		extractor,
		xlsx.NewFacade(),
		rowrange.New(),
		batch.NewEngine(renderer, namer, logger),
		sender,
		logger,
	)
	return svc, dir
}

func TestInspect(t *testing.T) {
	svc, _ := newTestService(t, &stubSender{})

	res, err := svc.Inspect(context.Background(), merge.InspectRequest{
		UUID:     "test-uuid",
		Template: "letter.docx",
		Dataset:  "recipients.xlsx",
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"name", "amount"}, res.Placeholders)
	assert.Equal(t, []string{"Name", "Email", "Amount"}, res.Columns)
	assert.Equal(t, 3, res.RowCount)
	assert.Empty(t, res.Message)
}

func TestInspectWrongType(t *testing.T) {
	svc, _ := newTestService(t, &stubSender{})

	_, err := svc.Inspect(context.Background(), merge.InspectRequest{
		Template: "letter.txt",
		Dataset:  "recipients.xlsx",
	})
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	svc, dir := newTestService(t, &stubSender{})

	res, err := svc.Generate(context.Background(), merge.GenerateRequest{
		UUID:     "test-uuid",
		Template: "letter.docx",
		Dataset:  "recipients.xlsx",
		Mapping:  map[string]string{"name": "Name", "amount": "Amount"},
		Rows:     "1-2",
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "uuid_Alice.docx"),
		filepath.Join(dir, "uuid_Bob.docx"),
	}, res.Documents)

	renderer, err := docx.New()
	assert.NoError(t, err)
	document, err := ioutil.ReadFile(res.Documents[0])
	assert.NoError(t, err)
	text, err := renderer.FullText(document)
	assert.NoError(t, err)
	assert.Contains(t, text, "Dear Alice, you owe 10.")
}

func TestGenerateEmptySelection(t *testing.T) {
	svc, _ := newTestService(t, &stubSender{})

	res, err := svc.Generate(context.Background(), merge.GenerateRequest{
		Template: "letter.docx",
		Dataset:  "recipients.xlsx",
		Mapping:  map[string]string{"name": "Name"},
		Rows:     "99",
	})
	assert.NoError(t, err)
	assert.Empty(t, res.Documents)
}

func TestEmail(t *testing.T) {
	sender := &stubSender{failFor: "carol@example.com"}
	svc, _ := newTestService(t, sender)

	auth := emailjs.Credentials{
		ServiceID:  "service_x",
		TemplateID: "template_x",
		PublicKey:  "public_x",
	}
	res, err := svc.Email(context.Background(), merge.EmailRequest{
		UUID:        "test-uuid",
		Template:    "letter.docx",
		Dataset:     "recipients.xlsx",
		Mapping:     map[string]string{"name": "Name", "amount": "Amount"},
		Rows:        "all",
		EmailColumn: "Email",
		Auth:        auth,
	})
	assert.NoError(t, err)
	// Bob has no address, Carol is refused by the transport
	assert.Equal(t, 1, res.Success)
	assert.Equal(t, 2, res.Failed)
	assert.Equal(t, "Email finished. Success: 1, Failed: 2", res.Summary)

	assert.Len(t, sender.sent, 1)
	assert.Equal(t, "alice@example.com", sender.sent[0].ToEmail)
	assert.Equal(t, "Your generated document", sender.sent[0].Subject)
	assert.Equal(t, "Please find your document attached.", sender.sent[0].Message)
	assert.Equal(t, "Alice.docx", sender.sent[0].AttachmentName)
	assert.NotEmpty(t, sender.sent[0].Attachment)
	assert.Equal(t, auth, sender.lastAuth)
}

func TestEmailNoTransportConfig(t *testing.T) {
	sender := &stubSender{}
	svc, _ := newTestService(t, sender)

	_, err := svc.Email(context.Background(), merge.EmailRequest{
		Template:    "letter.docx",
		Dataset:     "recipients.xlsx",
		EmailColumn: "Email",
		Rows:        "all",
	})
	assert.Error(t, err)
	assert.Empty(t, sender.sent)
}

func TestEmailNoColumn(t *testing.T) {
	sender := &stubSender{}
	svc, _ := newTestService(t, sender)

	_, err := svc.Email(context.Background(), merge.EmailRequest{
		Template: "letter.docx",
		Dataset:  "recipients.xlsx",
		Rows:     "all",
		Auth: emailjs.Credentials{
			ServiceID:  "service_x",
			TemplateID: "template_x",
			PublicKey:  "public_x",
		},
	})
	assert.Equal(t, batch.ErrNoEmailColumn, err)
	assert.Empty(t, sender.sent)
}

func TestGenerateMissingTemplate(t *testing.T) {
	svc, dir := newTestService(t, &stubSender{})
	assert.NoError(t, os.Remove(filepath.Join(dir, "letter.docx")))

	_, err := svc.Generate(context.Background(), merge.GenerateRequest{
		Template: "letter.docx",
		Dataset:  "recipients.xlsx",
		Rows:     "all",
	})
	assert.Error(t, err)
}
