package result

import (
	"errors"
	"fmt"
)

// Kind classifies why a read or write failed.
type Kind int

const (
	KindNetwork Kind = iota + 1
	KindAuthorization
	KindException
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuthorization:
		return "authorization"
	case KindException:
		return "exception"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching by kind.
var (
	ErrNetwork       = errors.New("network failure")
	ErrAuthorization = errors.New("authorization failure")
	ErrException     = errors.New("unexpected failure")
)

// Failure is the error side of a Result.
type Failure struct {
	Kind       Kind
	Message    string
	StatusCode int // set for HTTP failures when a response was received
	Err        error
}

// Network builds a connectivity or HTTP failure.
func Network(message string, err error) *Failure {
	return &Failure{Kind: KindNetwork, Message: message, Err: err}
}

// HTTPStatus builds a failure from a non-2xx response. 401 and 403 become
// authorization failures, everything else is a network failure.
func HTTPStatus(status int, message string) *Failure {
	kind := KindNetwork
	if status == 401 || status == 403 {
		kind = KindAuthorization
	}
	return &Failure{Kind: kind, Message: message, StatusCode: status}
}

// Authorization builds an authorization failure.
func Authorization(message string) *Failure {
	return &Failure{Kind: KindAuthorization, Message: message}
}

// Exception wraps an unexpected local error.
func Exception(err error) *Failure {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &Failure{Kind: KindException, Message: msg, Err: err}
}

// AsFailure returns err as a *Failure, wrapping foreign errors as exceptions.
func AsFailure(err error) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return Exception(err)
}

func (f *Failure) Error() string {
	var msg string
	switch {
	case f.Message != "" && f.StatusCode != 0:
		msg = fmt.Sprintf("%s failure (%d): %s", f.Kind, f.StatusCode, f.Message)
	case f.Message != "":
		msg = fmt.Sprintf("%s failure: %s", f.Kind, f.Message)
	case f.StatusCode != 0:
		msg = fmt.Sprintf("%s failure (%d)", f.Kind, f.StatusCode)
	default:
		msg = fmt.Sprintf("%s failure", f.Kind)
	}
	if f.Err != nil && f.Err.Error() != f.Message {
		msg += ": " + f.Err.Error()
	}
	return msg
}

func (f *Failure) Unwrap() error { return f.Err }

// Is matches the kind sentinels.
func (f *Failure) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return f.Kind == KindNetwork
	case ErrAuthorization:
		return f.Kind == KindAuthorization
	case ErrException:
		return f.Kind == KindException
	}
	return false
}
