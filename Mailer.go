package main

import (
	"encoding/base64"
	"fmt"

	"github.com/gooms-gusto/excel-generation-api/contracts"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const mailSubject = "Your generated Excel file"
const mailBody = "The requested Excel file is attached."

const sendGridHost = "https://api.sendgrid.com"
const sendGridHealthEndpoint = "/v3/scopes"

// SendGridMailer delivers generated workbooks as mail attachments.
type SendGridMailer struct {
	apiKey    string
	fromEmail string
	client    *sendgrid.Client
}

func NewSendGridMailer(apiKey string, fromEmail string) *SendGridMailer {
	return &SendGridMailer{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		client:    sendgrid.NewSendClient(apiKey),
	}
}

func (m *SendGridMailer) SendWorkbook(toEmail string, fileName string, content []byte) error {
	if m.apiKey == "" {
		return contracts.MailNotConfiguredError
	}

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", toEmail))

	attachment := mail.NewAttachment()
	attachment.SetContent(base64.StdEncoding.EncodeToString(content))
	attachment.SetType(xlsxContentType)
	attachment.SetFilename(fileName)
	attachment.SetDisposition("attachment")

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail("", m.fromEmail))
	message.Subject = mailSubject
	message.AddPersonalizations(personalization)
	message.AddContent(mail.NewContent("text/plain", mailBody))
	message.AddAttachment(attachment)

	response, err := m.client.Send(message)
	if err != nil {
		return fmt.Errorf("%w: %s", contracts.MailDeliveryError, err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected response status %d", contracts.MailDeliveryError, response.StatusCode)
	}

	return nil
}

// Health pings the SendGrid API with the configured key.
func (m *SendGridMailer) Health() error {
	if m.apiKey == "" {
		return contracts.MailNotConfiguredError
	}

	request := sendgrid.GetRequest(m.apiKey, sendGridHealthEndpoint, sendGridHost)

	response, err := sendgrid.API(request)
	if err != nil {
		return fmt.Errorf("%w: %s", contracts.MailDeliveryError, err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected response status %d", contracts.MailDeliveryError, response.StatusCode)
	}

	return nil
}
