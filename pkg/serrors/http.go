package serrors

import (
	"errors"
	"net/http"
)

// KindOf returns the kind found in err's chain, bare sentinels included.
// Errors without a known kind are ErrInternal.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) && se.Kind() != nil {
		return se.Kind()
	}
	for _, k := range Kinds() {
		if errors.Is(err, k) {
			return k
		}
	}

	return ErrInternal
}

// HTTPStatus maps err to the status of its kind. A nil error is 200.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	return KindOf(err).Status()
}

// PublicMessage returns the message safe to show a client: the error's own
// message, or its kind's default. Internal errors never expose their cause.
func PublicMessage(err error) string {
	k := KindOf(err)

	var se *Error
	if k != ErrInternal && errors.As(err, &se) && se.Message() != "" {
		return se.Message()
	}

	return k.DefaultMessage()
}
