// Package mailer sends account emails through AWS SES.
package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type Mailer struct {
	client *ses.Client
	from   string
	appURL string
}

// New builds an SES-backed mailer. appURL is the public frontend base used
// in verification and reset links.
func New(ctx context.Context, region, from, appURL string) (*Mailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("aws config load failed: %w", err)
	}

	return &Mailer{
		client: ses.NewFromConfig(cfg),
		from:   from,
		appURL: appURL,
	}, nil
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(m.from),
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendVerificationEmail mails the signup verification link. The token is
// valid for 24 hours.
func (m *Mailer) SendVerificationEmail(ctx context.Context, to, verificationToken, firstName string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", m.appURL, verificationToken)
	body := fmt.Sprintf(
		"Hi %s, welcome to CalZone!\n\nPlease verify your email by visiting:\n%s\n\nThis link expires in 24 hours.\n\nIf you didn't create this account, you can ignore this email.",
		firstName, link,
	)
	return m.send(ctx, to, "Verify Your Email - CalZone", body)
}

// SendUsernameEmail mails a username reminder.
func (m *Mailer) SendUsernameEmail(ctx context.Context, to, username, firstName string) error {
	body := fmt.Sprintf(
		"Hi %s, your username is: %s\n\nYou can use this to log in to your CalZone account.\n\nIf you didn't make this request, you can ignore this email.",
		firstName, username,
	)
	return m.send(ctx, to, "Your Username - CalZone", body)
}

// SendPasswordResetEmail mails the password reset link. The token is valid
// for 1 hour.
func (m *Mailer) SendPasswordResetEmail(ctx context.Context, to, resetToken, firstName string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.appURL, resetToken)
	body := fmt.Sprintf(
		"Hi %s, reset your password by visiting:\n%s\n\nThis link expires in 1 hour.\n\nIf you didn't make this request, you can ignore this email.",
		firstName, link,
	)
	return m.send(ctx, to, "Reset Your Password - CalZone", body)
}
