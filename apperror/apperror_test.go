package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfWalksChain(t *testing.T) {
	base := New(NotFound, "profile not found")
	wrapped := fmt.Errorf("link: %w", base)

	assert.Equal(t, NotFound, KindOf(wrapped))
	assert.True(t, Is(wrapped, NotFound))
	assert.Equal(t, "profile not found", MessageOf(wrapped))
	assert.Equal(t, Internal, KindOf(errors.New("boom")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestWithCodeKeepsKind(t *testing.T) {
	err := New(Duplicate, "You have already applied to this job").WithCode("already_applied")

	assert.Equal(t, Duplicate, KindOf(err))
	assert.Equal(t, "already_applied", CodeOf(err))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindOf(err)))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		UnsupportedFormat: http.StatusBadRequest,
		Validation:        http.StatusBadRequest,
		NotFound:          http.StatusNotFound,
		Forbidden:         http.StatusForbidden,
		Configuration:     http.StatusServiceUnavailable,
		ExtractionFailure: http.StatusInternalServerError,
		Internal:          http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(kind), kind)
	}
}
