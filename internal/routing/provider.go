// Package routing строит маршруты через внешние картографические сервисы
// с откатом на оценку по прямой.
package routing

//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/shenikar/guard_dispatch_system/internal/models"
)

// RouteProvider - внешний сервис построения маршрутов
type RouteProvider interface {
	Name() string
	ComputeRoute(ctx context.Context, origin, destination models.GeoPoint, mode models.TravelMode) (models.RouteResult, error)
}

// ErrorKind - класс ошибки провайдера
type ErrorKind string

const (
	KindNetwork     ErrorKind = "network"
	KindTimeout     ErrorKind = "timeout"
	KindAuth        ErrorKind = "auth"
	KindRateLimited ErrorKind = "rate_limited"
	KindMalformed   ErrorKind = "malformed"
	KindNoRoute     ErrorKind = "no_route"
	KindUpstream    ErrorKind = "upstream"
)

// ProviderError - нормализованная ошибка провайдера маршрутов
type ProviderError struct {
	Provider  string
	Kind      ErrorKind
	Retryable bool
	Err       error
}

// NewProviderError создает ProviderError, признак повтора определяется по классу ошибки
func NewProviderError(provider string, kind ErrorKind, err error) *ProviderError {
	retryable := false
	switch kind {
	case KindNetwork, KindTimeout, KindRateLimited, KindUpstream:
		retryable = true
	}
	return &ProviderError{
		Provider:  provider,
		Kind:      kind,
		Retryable: retryable,
		Err:       err,
	}
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("route provider %s: %s", e.Provider, e.Kind)
	}
	return fmt.Sprintf("route provider %s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// AsProviderError приводит произвольную ошибку к ProviderError
func AsProviderError(provider string, err error) *ProviderError {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr
	}
	return NewProviderError(provider, classifyTransportError(err), err)
}

func classifyTransportError(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindNetwork
}
