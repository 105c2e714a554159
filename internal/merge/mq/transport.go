package mq

import (
	"encoding/json"

	"github.com/geoirb/go-mailmerge/internal/emailjs"
	"github.com/geoirb/go-mailmerge/internal/merge"
)

type builder func(payload interface{}, err error) ([]byte, error)

// InspectTransport ...
type InspectTransport struct {
	builder builder
}

// NewInspectTransport ...
func NewInspectTransport(
	builder builder,
) *InspectTransport {
	return &InspectTransport{
		builder: builder,
	}
}

// DecodeRequest ...
func (t *InspectTransport) DecodeRequest(message []byte) (merge.InspectRequest, error) {
	var req inspectRequest
	err := json.Unmarshal(message, &req)
	return merge.InspectRequest(req), err
}

// EncodeResponse ...
func (t *InspectTransport) EncodeResponse(res merge.InspectResponse, err error) (message []byte) {
	payload := inspectResponse(res)
	message, _ = t.builder(payload, err)
	return
}

// GenerateTransport ...
type GenerateTransport struct {
	builder builder
}

// NewGenerateTransport ...
func NewGenerateTransport(
	builder builder,
) *GenerateTransport {
	return &GenerateTransport{
		builder: builder,
	}
}

// DecodeRequest ...
func (t *GenerateTransport) DecodeRequest(message []byte) (merge.GenerateRequest, error) {
	var req generateRequest
	err := json.Unmarshal(message, &req)
	return merge.GenerateRequest(req), err
}

// EncodeResponse ...
func (t *GenerateTransport) EncodeResponse(res merge.GenerateResponse, err error) (message []byte) {
	payload := generateResponse(res)
	message, _ = t.builder(payload, err)
	return
}

// EmailTransport ...
type EmailTransport struct {
	builder builder
}

// NewEmailTransport ...
func NewEmailTransport(
	builder builder,
) *EmailTransport {
	return &EmailTransport{
		builder: builder,
	}
}

// DecodeRequest ...
func (t *EmailTransport) DecodeRequest(message []byte) (req merge.EmailRequest, err error) {
	var r emailRequest
	if err = json.Unmarshal(message, &r); err != nil {
		return
	}
	req = merge.EmailRequest{
		UUID:        r.UUID,
		UserID:      r.UserID,
		Template:    r.Template,
		Dataset:     r.Dataset,
		Mapping:     r.Mapping,
		Rows:        r.Rows,
		EmailColumn: r.EmailColumn,
		Subject:     r.Subject,
		Message:     r.Message,
		Auth: emailjs.Credentials{
			ServiceID:  r.ServiceID,
			TemplateID: r.TemplateID,
			PublicKey:  r.PublicKey,
		},
	}
	return
}

// EncodeResponse ...
func (t *EmailTransport) EncodeResponse(res merge.EmailResponse, err error) (message []byte) {
	payload := emailResponse(res)
	message, _ = t.builder(payload, err)
	return
}
