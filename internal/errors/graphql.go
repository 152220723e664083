package errors

import (
	"context"
	"errors"
)

const (
	msgInternal         = "internal error"
	msgUnavailable      = "service unavailable"
	msgCanceled         = "request canceled"
	msgDeadlineExceeded = "request deadline exceeded"
)

// Extensions exposes the error code and metadata to GraphQL clients. graphql-go
// copies the result into the "extensions" member of the response error.
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"code": e.Code.String(),
	}
	if !e.Code.IsClientVisible() {
		return ext
	}
	for k, v := range e.Meta {
		if k == "code" {
			continue
		}
		ext[k] = v
	}
	return ext
}

// ToGraphQL converts an error into the form returned from a resolver.
// The result is always an *Error without a cause, so storage details never
// reach the client. Internal failures keep their code but lose their message.
func ToGraphQL(err error) error {
	if err == nil {
		return nil
	}

	var customErr *Error
	if !errors.As(err, &customErr) || customErr.Code == CodeInternal {
		switch {
		case errors.Is(err, context.Canceled):
			return Canceled(msgCanceled)
		case errors.Is(err, context.DeadlineExceeded):
			return DeadlineExceeded(msgDeadlineExceeded)
		}
	}

	if customErr == nil {
		return Internal(msgInternal)
	}

	switch customErr.Code {
	case CodeInternal, CodeOK:
		return Internal(msgInternal)
	case CodeUnavailable:
		return Unavailable(msgUnavailable)
	}

	return &Error{
		Code:    customErr.Code,
		Message: customErr.Message,
		Meta:    customErr.Meta,
	}
}
