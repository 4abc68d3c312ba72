package utils

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Mailer sends account emails through SES. A nil client (no region
// configured) turns every send into a no-op so local development works
// without AWS credentials.
type Mailer struct {
	client *ses.Client
	from   string
}

func NewMailer(ctx context.Context, region, from string) (*Mailer, error) {
	if region == "" {
		return &Mailer{}, nil
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &Mailer{client: ses.NewFromConfig(cfg), from: from}, nil
}

func (m *Mailer) send(to, subject, body string) error {
	if m.client == nil {
		return nil
	}
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.from),
	}

	_, err := m.client.SendEmail(context.TODO(), input)
	if err != nil {
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

func (m *Mailer) SendMFAEmail(to, code string) error {
	subject := "Your MFA Code"
	body := fmt.Sprintf("Your MFA verification code is: %s\n\nUse this to complete your login.", code)
	return m.send(to, subject, body)
}

func (m *Mailer) SendResetEmail(to, token string) error {
	subject := "Password Reset Code"
	body := fmt.Sprintf("Your password reset code is: %s\n\nUse this in the app to set a new password.", token)
	return m.send(to, subject, body)
}
