package merge

import (
	"context"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/geoirb/go-mailmerge/internal/batch"
	"github.com/geoirb/go-mailmerge/internal/emailjs"
	"github.com/geoirb/go-mailmerge/internal/parser"
)

type path interface {
	Template(name string) string
	Dataset(name string) string
	Output(name string) string
}

type typeParser interface {
	Type(filename string) (string, error)
}

type document interface {
	FullText(template []byte) (string, error)
}

type extractor interface {
	Extract(text string) []string
}

type dataset interface {
	Rows(data []byte) ([]map[string]string, []string, error)
}

type selector interface {
	Parse(expr string, rowCount int) []int
}

type engine interface {
	Generate(ctx context.Context, job batch.Job, sink batch.Sink) error
	Email(ctx context.Context, job batch.MailJob, send batch.SendFunc) (batch.Report, error)
}

type sender interface {
	Send(ctx context.Context, auth emailjs.Credentials, msg emailjs.Message) error
}

// Service of mail merge.
type Service interface {
	Inspect(ctx context.Context, req InspectRequest) (InspectResponse, error)
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Email(ctx context.Context, req EmailRequest) (EmailResponse, error)
}

type service struct {
	path      path
	parser    typeParser
	document  document
	extractor extractor
	dataset   dataset
	selector  selector
	engine    engine
	sender    sender

	logger log.Logger
}

// NewService ...
func NewService(
	path path,
	parser typeParser,
	document document,
	extractor extractor,
	dataset dataset,
	selector selector,
	engine engine,
	sender sender,

	logger log.Logger,
) Service {
	return &service{
		path:      path,
		parser:    parser,
		document:  document,
		extractor: extractor,
		dataset:   dataset,
		selector:  selector,
		engine:    engine,
		sender:    sender,
		logger:    logger,
	}
}

// Inspect discovers the placeholder set of the template and the column
// set of the dataset. Parse failures in either file degrade to empty
// results with a user-facing message, they are not fatal.
func (s *service) Inspect(ctx context.Context, req InspectRequest) (res InspectResponse, err error) {
	logger := log.WithPrefix(s.logger, "method", "Inspect", "uuid", req.UUID)

	res = InspectResponse{
		UUID:   req.UUID,
		UserID: req.UserID,
	}

	template, data, err := s.load(logger, req.Template, req.Dataset)
	if err != nil {
		return
	}

	messages := make([]string, 0, 2)
	text, errText := s.document.FullText(template)
	if errText != nil {
		level.Error(logger).Log("msg", "template full text", "err", errText)
		messages = append(messages, noPlaceholdersMessage)
	} else {
		res.Placeholders = s.extractor.Extract(text)
	}

	rows, columns, errRows := s.dataset.Rows(data)
	if errRows != nil {
		level.Error(logger).Log("msg", "dataset rows", "err", errRows)
		messages = append(messages, noRowsMessage)
	} else {
		res.Columns = columns
		res.RowCount = len(rows)
	}

	res.Message = strings.Join(messages, "; ")
	return
}

// Generate runs a download batch: one document per selected row,
// written under the output dir. Any row failure fails the whole batch.
func (s *service) Generate(ctx context.Context, req GenerateRequest) (res GenerateResponse, err error) {
	logger := log.WithPrefix(s.logger, "method", "Generate", "uuid", req.UUID)

	res = GenerateResponse{
		UUID:   req.UUID,
		UserID: req.UserID,
	}

	job, err := s.job(logger, req.Template, req.Dataset, req.Mapping, req.Rows)
	if err != nil {
		return
	}

	documents := make([]string, 0, len(job.Selection))
	sink := func(name string, document []byte) error {
		file := s.path.Output(name)
		if errWrite := ioutil.WriteFile(file, document, 0644); errWrite != nil {
			return errWrite
		}
		documents = append(documents, file)
		return nil
	}

	if err = s.engine.Generate(ctx, job, sink); err != nil {
		level.Error(logger).Log("msg", "generate batch", "err", err)
		return
	}
	res.Documents = documents
	return
}

// Email runs a delivery batch. Transport configuration and the email
// column are validated before any row is consumed; after that a row
// failure only bumps the failure counter.
func (s *service) Email(ctx context.Context, req EmailRequest) (res EmailResponse, err error) {
	logger := log.WithPrefix(s.logger, "method", "Email", "uuid", req.UUID)

	res = EmailResponse{
		UUID:   req.UUID,
		UserID: req.UserID,
	}

	if !req.Auth.IsComplete() {
		level.Error(logger).Log("msg", "validate transport", "err", errNoTransportConfig)
		err = errNoTransportConfig
		return
	}

	job, err := s.job(logger, req.Template, req.Dataset, req.Mapping, req.Rows)
	if err != nil {
		return
	}

	mailJob := batch.MailJob{
		Job:         job,
		EmailColumn: req.EmailColumn,
		Subject:     req.Subject,
		Message:     req.Message,
	}
	if mailJob.Subject == "" {
		mailJob.Subject = defaultSubject
	}
	if mailJob.Message == "" {
		mailJob.Message = defaultMessage
	}

	send := func(ctx context.Context, recipient, subject, message, attachment, name string) error {
		return s.sender.Send(ctx, req.Auth, emailjs.Message{
			ToEmail:        recipient,
			Subject:        subject,
			Message:        message,
			Attachment:     attachment,
			AttachmentName: name,
		})
	}

	report, err := s.engine.Email(ctx, mailJob, send)
	if err != nil {
		level.Error(logger).Log("msg", "email batch", "err", err)
		return
	}

	res.Success = report.Success
	res.Failed = report.Failed
	res.Summary = report.Summary()
	level.Info(logger).Log("msg", "email batch", "success", report.Success, "failed", report.Failed)
	return
}

// job loads and validates the template/dataset pair and resolves the
// row selection.
func (s *service) job(logger log.Logger, template, dataset string, mapping map[string]string, rows string) (job batch.Job, err error) {
	templateData, data, err := s.load(logger, template, dataset)
	if err != nil {
		return
	}

	dataRows, _, err := s.dataset.Rows(data)
	if err != nil {
		level.Error(logger).Log("msg", "dataset rows", "err", err)
		return
	}

	text, err := s.document.FullText(templateData)
	if err != nil {
		level.Error(logger).Log("msg", "template full text", "err", err)
		return
	}

	job = batch.Job{
		Template:     templateData,
		Rows:         dataRows,
		Selection:    s.selector.Parse(rows, len(dataRows)),
		Placeholders: s.extractor.Extract(text),
		Mapping:      mapping,
	}
	return
}

// load validates the file types and reads both files.
func (s *service) load(logger log.Logger, template, dataset string) (templateData, datasetData []byte, err error) {
	fileType, err := s.parser.Type(template)
	if err != nil || fileType != parser.TypeDocx {
		level.Error(logger).Log("msg", "template type", "template", template, "err", err)
		err = errWrongTemplateType
		return
	}
	fileType, err = s.parser.Type(dataset)
	if err != nil || (fileType != parser.TypeXlsx && fileType != parser.TypeXls) {
		level.Error(logger).Log("msg", "dataset type", "dataset", dataset, "err", err)
		err = errWrongDatasetType
		return
	}

	if templateData, err = ioutil.ReadFile(s.path.Template(template)); err != nil {
		level.Error(logger).Log("msg", "read template", "template", template, "err", err)
		err = fmt.Errorf("read template: %s", err)
		return
	}
	if datasetData, err = ioutil.ReadFile(s.path.Dataset(dataset)); err != nil {
		level.Error(logger).Log("msg", "read dataset", "dataset", dataset, "err", err)
		err = fmt.Errorf("read dataset: %s", err)
	}
	return
}
