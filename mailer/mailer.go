// Package mailer delivers transactional email through Resend. It is the
// Notifier collaborator of the auth and meeting packages; callers treat
// every send as fire-and-forget.
package mailer

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/resend/resend-go/v2"

	"github.com/sakshisharma25/meetyfi-b/meeting"
)

type Mailer struct {
	client  *resend.Client
	from    string
	project string
}

func New(apiKey, from, project string) *Mailer {
	return &Mailer{
		client:  resend.NewClient(apiKey),
		from:    from,
		project: project,
	}
}

// SendVerificationCode emails a one-time code, used both for signup
// verification and login challenges.
func (m *Mailer) SendVerificationCode(ctx context.Context, email, code string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email},
		Subject: fmt.Sprintf("Verify your %s account", m.project),
		Html:    renderVerificationEmail(m.project, code),
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to send verification email")
	}
	return nil
}

// SendMeetingNotice emails the meeting details to the client.
func (m *Mailer) SendMeetingNotice(ctx context.Context, email string, mt *meeting.Meeting) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email},
		Subject: "New Meeting Request",
		Html:    renderMeetingEmail(mt),
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to send meeting email")
	}
	return nil
}

func renderVerificationEmail(project, code string) string {
	return fmt.Sprintf(`<html>
	<body style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px; margin: auto;">
		<div style="background-color: #f8f9fa; padding: 20px; border-radius: 5px;">
			<h2 style="color: #333; text-align: center;">Welcome to %s!</h2>
			<p>Thank you for signing up. Please use the verification code below:</p>
			<div style="background-color: #fff; padding: 15px; text-align: center; font-size: 24px;
					  font-weight: bold; margin: 20px 0; border-radius: 5px;">%s</div>
			<p>This code will expire in 10 minutes.</p>
			<p>If you didn't request this code, please ignore this email.</p>
		</div>
	</body>
</html>`, project, code)
}

func renderMeetingEmail(mt *meeting.Meeting) string {
	return fmt.Sprintf(`<html>
	<body style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px; margin: auto;">
		<div style="background-color: #f8f9fa; padding: 20px; border-radius: 5px;">
			<h2 style="color: #333; text-align: center;">New Meeting Scheduled</h2>
			<div style="background-color: #fff; padding: 20px; border-radius: 5px; margin: 20px 0;">
				<p><strong>Date:</strong> %s</p>
				<p><strong>Time:</strong> %s</p>
				<p><strong>Client:</strong> %s</p>
				<p><strong>Location:</strong> %s</p>
			</div>
			<p>Please review and confirm the meeting details.</p>
		</div>
	</body>
</html>`, mt.Date, mt.Time, mt.ClientName, mt.Location)
}
