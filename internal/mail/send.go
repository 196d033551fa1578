package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/jekabolt/grbpwr-newsletter/internal/entity"
)

const NewSubscriber = "new_subscriber.gohtml"

var templateSubjects = map[string]string{
	NewSubscriber: "Welcome to our newsletter",
}

// SendNewSubscriber sends a welcome email to a new subscriber.
func (m *Mailer) SendNewSubscriber(ctx context.Context, ns entity.NewSubscriber) error {
	data := struct {
		Name  string
		Email string
	}{
		Name:  ns.Name().String(),
		Email: ns.Email().String(),
	}
	text := fmt.Sprintf("Hi %s, welcome to our newsletter! You will receive our next issue at %s.", data.Name, data.Email)
	return m.send(ctx, ns.Email(), NewSubscriber, data, text)
}

func (m *Mailer) send(ctx context.Context, to entity.SubscriberEmail, tn string, data any, text string) error {
	tmpl, ok := m.templates[tn]
	if !ok {
		return fmt.Errorf("template not found: %v", tn)
	}
	subject, ok := templateSubjects[tn]
	if !ok {
		return fmt.Errorf("subject not found for template: %v", tn)
	}

	body := &strings.Builder{}
	if err := tmpl.Execute(body, data); err != nil {
		return fmt.Errorf("error executing template: %w", err)
	}

	return m.SendEmail(ctx, to, subject, body.String(), text)
}
