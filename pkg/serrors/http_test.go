package serrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"autobuilder/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{serrors.KindOnly(serrors.ErrNotFound), http.StatusNotFound},
		{serrors.ErrNotFound, http.StatusNotFound},
		{serrors.With(serrors.ErrBadRequest, "bad %s", "input"), http.StatusBadRequest},
		{serrors.Wrap(serrors.ErrConflict, errors.New("dup"), "repository exists"), http.StatusConflict},
		{fmt.Errorf("outer: %w", serrors.KindOnly(serrors.ErrRateLimited)), http.StatusTooManyRequests},
		{serrors.KindOnly(serrors.ErrTimeout), http.StatusGatewayTimeout},
		{serrors.KindOnly(serrors.ErrUnavailable), http.StatusServiceUnavailable},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, serrors.HTTPStatus(tt.err), "%v", tt.err)
	}
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(fmt.Errorf("x: %w", serrors.KindOnly(serrors.ErrNotFound))))
	require.Equal(t, serrors.ErrForbidden, serrors.KindOf(fmt.Errorf("x: %w", serrors.ErrForbidden)))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
}

func TestPublicMessage(t *testing.T) {
	require.Equal(t, "repository acme/app exists",
		serrors.PublicMessage(serrors.With(serrors.ErrConflict, "repository acme/app exists")))
	require.Equal(t, "resource not found", serrors.PublicMessage(serrors.KindOnly(serrors.ErrNotFound)))
	require.Equal(t, "internal error", serrors.PublicMessage(serrors.With(serrors.ErrInternal, "pq: connection refused")))
	require.Equal(t, "internal error", serrors.PublicMessage(errors.New("boom")))
}
