package mail

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/asaskevich/govalidator"
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jekabolt/grbpwr-newsletter/internal/entity"
	gerr "github.com/jekabolt/grbpwr-newsletter/internal/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

const sendEndpoint = "/v3/mail/send"

type Config struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	FromEmail   string        `mapstructure:"from_email"`
	FromName    string        `mapstructure:"from_email_name"`
	Timeout     time.Duration `mapstructure:"timeout"`
	SendWelcome bool          `mapstructure:"send_welcome"`
}

// Validate checks the settings needed to build a Mailer.
func (c *Config) Validate() error {
	return v.ValidateStruct(c,
		v.Field(&c.BaseURL, v.Required, v.By(func(value interface{}) error {
			if s, _ := value.(string); !govalidator.IsRequestURL(s) {
				return fmt.Errorf("must be an absolute URL")
			}
			return nil
		})),
		v.Field(&c.FromEmail, v.Required),
		v.Field(&c.Timeout, v.Required),
	)
}

// Mailer sends transactional email through the SendGrid v3 API.
type Mailer struct {
	c         *Config
	from      *mail.Email
	templates map[string]*template.Template
}

func New(c *Config) (*Mailer, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mailer config: %w", err)
	}
	sender, err := entity.ParseSubscriberEmail(c.FromEmail)
	if err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}

	m := &Mailer{
		c:         c,
		from:      mail.NewEmail(c.FromName, sender.String()),
		templates: make(map[string]*template.Template),
	}
	if err := m.parseTemplates(); err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	return m, nil
}

func (m *Mailer) parseTemplates() error {
	templateDir := "templates"

	dirEntries, err := templatesFS.ReadDir(templateDir)
	if err != nil {
		return fmt.Errorf("error reading template directory: %w", err)
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		tmpl, err := template.ParseFS(templatesFS, filepath.Join(templateDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
		}
		m.templates[entry.Name()] = tmpl
	}

	return nil
}

// SendEmail delivers a single message to recipient.
func (m *Mailer) SendEmail(ctx context.Context, recipient entity.SubscriberEmail, subject, htmlContent, textContent string) error {
	if subject == "" || (htmlContent == "" && textContent == "") {
		return gerr.BadMailRequest
	}

	msg := mail.NewSingleEmail(m.from, subject, mail.NewEmail("", recipient.String()), textContent, htmlContent)

	req := sendgrid.GetRequest(m.c.APIKey, sendEndpoint, m.c.BaseURL)
	req.Method = http.MethodPost
	req.Body = mail.GetRequestBody(msg)

	ctx, cancel := context.WithTimeout(ctx, m.c.Timeout)
	defer cancel()

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return gerr.MailApiLimitReached
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("error sending email bad status code: %s, status code: %d", resp.Body, resp.StatusCode)
	}
	return nil
}
