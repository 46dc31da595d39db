package client

import "fmt"

// Kind classifies an API client failure so callers can branch on the class
// of problem instead of string-matching messages.
type Kind int

const (
	// KindUnknown is the zero value; anything unclassified.
	KindUnknown Kind = iota
	// KindNetwork: the request never produced an HTTP response.
	KindNetwork
	// KindAuth: 401, the session is missing or expired.
	KindAuth
	// KindRemoteValidation: the server rejected the payload (400 or 422).
	KindRemoteValidation
	// KindNotFound: 404.
	KindNotFound
	// KindDuplicate: 409.
	KindDuplicate
	// KindServer: any 5xx.
	KindServer
)

// Error is the error type every Client method returns on failure. Message is
// user-presentable Spanish; Detail keeps the server's own words when it sent
// any.
type Error struct {
	Kind   Kind
	Status int
	// Message is safe to show to the end user.
	Message string
	// Detail is the server-provided description, if any.
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" && e.Detail != e.Message {
		return fmt.Sprintf("%s (%s)", e.Message, e.Detail)
	}
	return e.Message
}

// normalize builds the user-facing Error for an HTTP status plus the detail
// the server sent in its apierror envelope.
func normalize(status int, detail string) *Error {
	e := &Error{Status: status, Detail: detail}
	switch {
	case status == 401:
		e.Kind = KindAuth
		e.Message = "Sesión expirada. Inicie sesión de nuevo."
	case status == 404:
		e.Kind = KindNotFound
		e.Message = "Recurso no encontrado."
	case status == 409:
		e.Kind = KindDuplicate
		e.Message = "El recurso ya existe."
	case status == 400 || status == 422:
		e.Kind = KindRemoteValidation
		e.Message = "Datos inválidos."
	case status >= 500:
		e.Kind = KindServer
		e.Message = "Error del servidor. Inténtelo más tarde."
	default:
		e.Message = fmt.Sprintf("Respuesta inesperada del servidor (%d).", status)
	}
	if detail != "" {
		e.Message = detail
	}
	return e
}

// networkError wraps a transport failure.
func networkError(err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: "No se pudo conectar con el servidor.",
		Detail:  err.Error(),
	}
}

// IsKind reports whether err is a client Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
