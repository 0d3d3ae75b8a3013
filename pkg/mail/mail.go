package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"gopkg.in/gomail.v2"
)

//go:generate go run go.uber.org/mock/mockgen -source=mail.go -destination=mock/mail_mock.go -package=mock

//go:embed template/*.html
var templates embed.FS

type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// InvoiceData is rendered into the invoice sharing email.
type InvoiceData struct {
	CustomerName string
	Reference    string
	TurfName     string
	Date         string
	StartTime    string
	EndTime      string
	TotalAmount  string
	InvoiceURL   string
}

type PosterData struct {
	TournamentName string
	StartDate      string
	PosterURL      string
}

type Service interface {
	SendInvoice(to string, data InvoiceData, pdf []byte) error
	SendPoster(to string, data PosterData) error
}

// Sender delivers messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type service struct {
	config          Config
	sender          Sender
	invoiceTemplate *template.Template
	posterTemplate  *template.Template
}

func New(config Config) (Service, error) {
	return NewWithSender(config, gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUsername, config.SMTPPassword))
}

func NewWithSender(config Config, sender Sender) (Service, error) {
	invoiceTemplate, err := template.ParseFS(templates, "template/invoice_share.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse invoice template: %w", err)
	}

	posterTemplate, err := template.ParseFS(templates, "template/poster_share.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse poster template: %w", err)
	}

	return &service{
		config:          config,
		sender:          sender,
		invoiceTemplate: invoiceTemplate,
		posterTemplate:  posterTemplate,
	}, nil
}

func (s *service) SendInvoice(to string, data InvoiceData, pdf []byte) error {
	var body bytes.Buffer
	if err := s.invoiceTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute invoice template: %w", err)
	}

	m := s.message(to, "Your booking "+data.Reference, body.String())

	if len(pdf) > 0 {
		m.Attach(data.Reference+".pdf", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)

			return err
		}), gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}))
	}

	return s.sender.DialAndSend(m)
}

func (s *service) SendPoster(to string, data PosterData) error {
	var body bytes.Buffer
	if err := s.posterTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute poster template: %w", err)
	}

	return s.sender.DialAndSend(s.message(to, data.TournamentName+" is open for registration", body.String()))
}

func (s *service) message(to, subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return m
}
