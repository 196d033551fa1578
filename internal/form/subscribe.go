package form

import (
	"fmt"
	"net/http"

	"github.com/jekabolt/grbpwr-newsletter/internal/entity"
	gerr "github.com/jekabolt/grbpwr-newsletter/internal/errors"
)

// maxFormBytes bounds the size of an accepted form body.
const maxFormBytes = 64 << 10

// SubscribeRequest holds the raw, untrusted fields of a subscription form.
type SubscribeRequest struct {
	Name  string
	Email string
}

// ParseSubscribeRequest decodes an application/x-www-form-urlencoded body.
// Both fields must be present; their contents are checked by Validate.
func ParseSubscribeRequest(w http.ResponseWriter, r *http.Request) (*SubscribeRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %v", gerr.ErrMalformedForm, err)
	}

	req := &SubscribeRequest{}
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"name", &req.Name},
		{"email", &req.Email},
	} {
		if !r.PostForm.Has(f.key) {
			return nil, fmt.Errorf("%w: %s", gerr.ErrMissingField, f.key)
		}
		*f.dst = r.PostForm.Get(f.key)
	}
	return req, nil
}

// Validate turns the raw fields into a NewSubscriber.
func (r *SubscribeRequest) Validate() (entity.NewSubscriber, error) {
	return entity.ParseNewSubscriber(r.Name, r.Email)
}
