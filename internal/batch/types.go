package batch

import (
	"context"
	"fmt"
)

// Job describes one merge batch: the template, the dataset rows, the
// resolved row selection and the placeholder/column binding.
type Job struct {
	Template     []byte
	Rows         []map[string]string
	Selection    []int
	Placeholders []string
	Mapping      map[string]string
}

// MailJob describes one delivery batch.
type MailJob struct {
	Job
	EmailColumn string
	Subject     string
	Message     string
}

// Sink consumes one rendered document.
type Sink func(name string, document []byte) error

// SendFunc performs one delivery attempt of a rendered document.
type SendFunc func(ctx context.Context, recipient, subject, message, attachment, name string) error

// Report of a delivery batch.
type Report struct {
	Success int
	Failed  int
}

// Summary returns the user-facing result line of a delivery batch.
func (r Report) Summary() string {
	return fmt.Sprintf("Email finished. Success: %d, Failed: %d", r.Success, r.Failed)
}
