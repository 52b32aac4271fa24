package contracts

import "errors"

type Mailer interface {
	SendWorkbook(toEmail string, fileName string, content []byte) error
	Health() error
}

var MailNotConfiguredError = errors.New("mail transport is not configured")

var MailDeliveryError = errors.New("mail delivery failed")
