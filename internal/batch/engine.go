package batch

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

const documentExt = ".docx"

type renderer interface {
	Render(template []byte, payload map[string]string) ([]byte, error)
}

type namer interface {
	Derive(seed string) string
}

// Engine runs merge batches over a row selection, one row at a time,
// in ascending row order. No row work overlaps: a row is rendered,
// named and delivered before the next row starts.
type Engine struct {
	renderer renderer
	namer    namer

	logger log.Logger
}

// NewEngine ...
func NewEngine(
	renderer renderer,
	namer namer,

	logger log.Logger,
) *Engine {
	return &Engine{
		renderer: renderer,
		namer:    namer,
		logger:   logger,
	}
}

// Generate renders one document per selected row and hands each to
// sink. The first render or sink error aborts the batch: generation
// is all or nothing.
func (e *Engine) Generate(ctx context.Context, job Job, sink Sink) error {
	for _, idx := range job.Selection {
		payload := Bind(job.Placeholders, job.Mapping, job.Rows[idx])
		document, err := e.renderer.Render(job.Template, payload)
		if err != nil {
			return fmt.Errorf("render row %d: %s", idx+1, err)
		}
		name := e.namer.Derive(e.generateSeed(payload, job, idx)) + documentExt
		if err = sink(name, document); err != nil {
			return fmt.Errorf("deliver row %d: %s", idx+1, err)
		}
	}
	return nil
}

// Email renders and delivers one document per selected row. A row
// with an empty recipient, a failed render or a failed send counts as
// a failure and the batch moves on: a single row never aborts
// delivery for the remaining recipients.
func (e *Engine) Email(ctx context.Context, job MailJob, send SendFunc) (report Report, err error) {
	if job.EmailColumn == "" {
		err = ErrNoEmailColumn
		return
	}

	logger := log.WithPrefix(e.logger, "method", "Email")
	for _, idx := range job.Selection {
		row := job.Rows[idx]
		recipient := strings.TrimSpace(row[job.EmailColumn])
		if recipient == "" {
			level.Error(logger).Log("msg", "empty recipient", "row", idx+1)
			report.Failed++
			continue
		}

		payload := Bind(job.Placeholders, job.Mapping, row)
		document, errRow := e.renderer.Render(job.Template, payload)
		if errRow != nil {
			level.Error(logger).Log("msg", "render document", "row", idx+1, "recipient", recipient, "err", errRow)
			report.Failed++
			continue
		}

		name := e.namer.Derive(e.mailSeed(payload, job.Placeholders, idx)) + documentExt
		attachment := base64.StdEncoding.EncodeToString(document)
		if errRow = send(ctx, recipient, job.Subject, job.Message, attachment, name); errRow != nil {
			level.Error(logger).Log("msg", "send document", "row", idx+1, "recipient", recipient, "err", errRow)
			report.Failed++
			continue
		}
		report.Success++
	}
	return
}

// generateSeed is the file name seed of a generated document: the
// bound value of the first placeholder. When that value is empty a
// single-row batch falls back to "document", a multi-row batch to
// document_<1-based row number>.
func (e *Engine) generateSeed(payload map[string]string, job Job, idx int) string {
	if seed := firstValue(payload, job.Placeholders); seed != "" {
		return seed
	}
	if len(job.Selection) == 1 {
		return "document"
	}
	return fmt.Sprintf("document_%d", idx+1)
}

// mailSeed always falls back to the row-numbered name: attachments
// need distinct names even for a single-row batch.
func (e *Engine) mailSeed(payload map[string]string, placeholders []string, idx int) string {
	if seed := firstValue(payload, placeholders); seed != "" {
		return seed
	}
	return fmt.Sprintf("document_%d", idx+1)
}

func firstValue(payload map[string]string, placeholders []string) string {
	if len(placeholders) == 0 {
		return ""
	}
	return payload[placeholders[0]]
}
