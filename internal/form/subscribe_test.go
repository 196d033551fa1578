package form

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gerr "github.com/jekabolt/grbpwr-newsletter/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/subscriptions", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestParseSubscribeRequest(t *testing.T) {
	req, err := ParseSubscribeRequest(httptest.NewRecorder(),
		newFormRequest("name=le%20something&email=something-something%40gmail.com"))
	require.NoError(t, err)
	assert.Equal(t, "le something", req.Name)
	assert.Equal(t, "something-something@gmail.com", req.Email)

	ns, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, "something-something@gmail.com", ns.Email().String())
}

func TestParseSubscribeRequest_Missing(t *testing.T) {
	cases := map[string]string{
		"missing the email":      "name=something",
		"missing the name":       "email=ursula%40something.com",
		"missing name and email": "",
	}
	for desc, body := range cases {
		_, err := ParseSubscribeRequest(httptest.NewRecorder(), newFormRequest(body))
		assert.True(t, errors.Is(err, gerr.ErrMissingField), desc)
		assert.True(t, gerr.IsClientError(err), desc)
	}
}

func TestParseSubscribeRequest_EmptyFieldIsPresent(t *testing.T) {
	req, err := ParseSubscribeRequest(httptest.NewRecorder(),
		newFormRequest("name=&email=ursula_le_guin%40gmail.com"))
	require.NoError(t, err)

	_, err = req.Validate()
	assert.True(t, gerr.IsValidation(err))
}

func TestParseSubscribeRequest_Malformed(t *testing.T) {
	_, err := ParseSubscribeRequest(httptest.NewRecorder(), newFormRequest("name=%zz"))
	assert.True(t, errors.Is(err, gerr.ErrMalformedForm))
}
