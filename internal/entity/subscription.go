package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	gerr "github.com/jekabolt/grbpwr-newsletter/internal/errors"
)

// MaxSubscriberNameLength is the maximum number of characters in a subscriber name.
const MaxSubscriberNameLength = 256

// forbiddenNameChars can't appear anywhere in a subscriber name.
const forbiddenNameChars = `/()"<>\{}`

// SubscriberName is a trimmed, non-empty, bounded name free of forbidden characters.
// The only way to obtain one holding a value is ParseSubscriberName.
type SubscriberName struct {
	value string
}

// ParseSubscriberName validates raw and returns it as a SubscriberName.
func ParseSubscriberName(raw string) (SubscriberName, error) {
	name := strings.TrimSpace(raw)
	err := v.Validate(name,
		v.Required,
		v.RuneLength(1, MaxSubscriberNameLength),
		v.By(noForbiddenChars),
	)
	if err != nil {
		return SubscriberName{}, &gerr.ValidationError{Field: "name", Reason: err.Error()}
	}
	return SubscriberName{value: name}, nil
}

func noForbiddenChars(value interface{}) error {
	s, _ := value.(string)
	for _, r := range s {
		if strings.ContainsRune(forbiddenNameChars, r) {
			return fmt.Errorf("must not contain %q", r)
		}
		if unicode.IsControl(r) {
			return errors.New("must not contain control characters")
		}
	}
	return nil
}

func (n SubscriberName) String() string {
	return n.value
}

// SubscriberEmail is a syntactically valid email address.
type SubscriberEmail struct {
	value string
}

// ParseSubscriberEmail validates raw against the email address grammar.
func ParseSubscriberEmail(raw string) (SubscriberEmail, error) {
	email := strings.TrimSpace(raw)
	err := v.Validate(email,
		v.Required,
		is.EmailFormat,
		v.By(hasLocalAndDomain),
	)
	if err != nil {
		return SubscriberEmail{}, &gerr.ValidationError{Field: "email", Reason: err.Error()}
	}
	return SubscriberEmail{value: email}, nil
}

func hasLocalAndDomain(value interface{}) error {
	s, _ := value.(string)
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return errors.New("must have a local part and a domain")
	}
	return nil
}

func (e SubscriberEmail) String() string {
	return e.value
}

// NewSubscriber is a single validated intake attempt.
type NewSubscriber struct {
	name  SubscriberName
	email SubscriberEmail
}

// ParseNewSubscriber validates both raw fields. Every failing field is reported.
func ParseNewSubscriber(rawName, rawEmail string) (NewSubscriber, error) {
	name, nameErr := ParseSubscriberName(rawName)
	email, emailErr := ParseSubscriberEmail(rawEmail)
	if err := errors.Join(nameErr, emailErr); err != nil {
		return NewSubscriber{}, err
	}
	return NewSubscriber{name: name, email: email}, nil
}

func (ns NewSubscriber) Name() SubscriberName {
	return ns.name
}

func (ns NewSubscriber) Email() SubscriberEmail {
	return ns.email
}

// Subscription is a persisted subscriber row.
type Subscription struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	SubscribedAt time.Time `db:"subscribed_at"`
}
