package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
)

// DefaultURL of the EmailJS send API.
const DefaultURL = "https://api.emailjs.com/api/v1.0/email/send"

// Credentials identify an EmailJS account and mail template. They are
// opaque to the merge engine and ride with every request.
type Credentials struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
}

// IsComplete reports whether every identifier is set.
func (c Credentials) IsComplete() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

// Message is the template parameter set of one delivery.
type Message struct {
	ToEmail        string `json:"to_email"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	Attachment     string `json:"attachment"`
	AttachmentName string `json:"attachment_filename"`
}

type request struct {
	ServiceID      string  `json:"service_id"`
	TemplateID     string  `json:"template_id"`
	UserID         string  `json:"user_id"`
	TemplateParams Message `json:"template_params"`
}

// Sender delivers messages through the EmailJS send API. One attempt
// per call, no retries.
type Sender struct {
	url    string
	client *http.Client
}

// NewSender ...
func NewSender(url string, client *http.Client) *Sender {
	if url == "" {
		url = DefaultURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Sender{
		url:    url,
		client: client,
	}
}

// Send performs one delivery attempt. A non-2xx response is returned
// as an error carrying the response body.
func (s *Sender) Send(ctx context.Context, auth Credentials, msg Message) (err error) {
	body, err := json.Marshal(request{
		ServiceID:      auth.ServiceID,
		TemplateID:     auth.TemplateID,
		UserID:         auth.PublicKey,
		TemplateParams: msg,
	})
	if err != nil {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		payload, _ := ioutil.ReadAll(res.Body)
		err = fmt.Errorf("emailjs: status %d: %s", res.StatusCode, payload)
	}
	return
}
