package mq

import (
	"context"

	"github.com/geoirb/go-mailmerge/internal/kafka"
	"github.com/geoirb/go-mailmerge/internal/merge"
)

type inspectServe struct {
	svc       merge.Service
	transport *InspectTransport
	publish   kafka.Publish
}

func (s *inspectServe) handle(ctx context.Context, message []byte) {
	request, err := s.transport.DecodeRequest(message)

	var res merge.InspectResponse
	if err == nil {
		res, err = s.svc.Inspect(ctx, request)
	}

	s.publish(s.transport.EncodeResponse(res, err))
}

// NewInspectHandler ...
func NewInspectHandler(
	svc merge.Service,
	transport *InspectTransport,
	publish kafka.Publish,
) kafka.Handler {
	s := &inspectServe{
		svc:       svc,
		transport: transport,
		publish:   publish,
	}
	return s.handle
}

type generateServe struct {
	svc       merge.Service
	transport *GenerateTransport
	publish   kafka.Publish
}

func (s *generateServe) handle(ctx context.Context, message []byte) {
	request, err := s.transport.DecodeRequest(message)

	var res merge.GenerateResponse
	if err == nil {
		res, err = s.svc.Generate(ctx, request)
	}

	s.publish(s.transport.EncodeResponse(res, err))
}

// NewGenerateHandler ...
func NewGenerateHandler(
	svc merge.Service,
	transport *GenerateTransport,
	publish kafka.Publish,
) kafka.Handler {
	s := &generateServe{
		svc:       svc,
		transport: transport,
		publish:   publish,
	}
	return s.handle
}

type emailServe struct {
	svc       merge.Service
	transport *EmailTransport
	publish   kafka.Publish
}

func (s *emailServe) handle(ctx context.Context, message []byte) {
	request, err := s.transport.DecodeRequest(message)

	var res merge.EmailResponse
	if err == nil {
		res, err = s.svc.Email(ctx, request)
	}

	s.publish(s.transport.EncodeResponse(res, err))
}

// NewEmailHandler ...
func NewEmailHandler(
	svc merge.Service,
	transport *EmailTransport,
	publish kafka.Publish,
) kafka.Handler {
	s := &emailServe{
		svc:       svc,
		transport: transport,
		publish:   publish,
	}
	return s.handle
}
