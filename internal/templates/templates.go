// Package templates renders the outreach email subjects and bodies. Rendering
// is pure: the same name and variables always produce the same output, and no
// template touches the network or the clock.
package templates

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Template names recognised by Render.
const (
	ReviewRequest = "reviewRequest"
	FollowUp1     = "followup1"
	FollowUp2     = "followup2"
)

var (
	// ErrUnknownTemplate is returned when the template name is not one of the
	// constants above.
	ErrUnknownTemplate = errors.New("templates: unknown template")

	// ErrMissingVariable is returned when a required variable is absent,
	// empty, or (for the review URL) not an absolute URL.
	ErrMissingVariable = errors.New("templates: missing variable")
)

// Variables is the fixed variable set every template consumes.
type Variables struct {
	CustomerName string
	BusinessName string
	ReviewURL    string
}

// Rendered is the output of Render: a substituted subject line plus HTML and
// plain-text bodies.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

// Subject lines carry {placeholder} markers resolved via Subject. They are
// exported raw so callers holding only a subject string can re-render them.
const (
	ReviewRequestSubject = "How was your experience with {businessName}?"
	FollowUp1Subject     = "Quick follow-up: Your feedback matters to {businessName}"
	FollowUp2Subject     = "Final request: Help others discover {businessName}"
)

// Subject substitutes {key} placeholders in a bare subject line. This is a
// separate, simpler mechanism than body rendering; some callers only have a
// subject string and a variables map.
func Subject(subject string, vars map[string]string) string {
	for k, v := range vars {
		subject = strings.ReplaceAll(subject, "{"+k+"}", v)
	}
	return subject
}

// Render produces the subject, HTML body, and text body for the named
// template.
func Render(name string, vars Variables) (Rendered, error) {
	if err := vars.validate(); err != nil {
		return Rendered{}, err
	}

	subjVars := map[string]string{"businessName": vars.BusinessName}

	switch name {
	case ReviewRequest:
		return Rendered{
			Subject: Subject(ReviewRequestSubject, subjVars),
			HTML:    reviewRequestHTML(vars),
			Text:    reviewRequestText(vars),
		}, nil
	case FollowUp1:
		return Rendered{
			Subject: Subject(FollowUp1Subject, subjVars),
			HTML:    followUp1HTML(vars),
			Text:    followUp1Text(vars),
		}, nil
	case FollowUp2:
		return Rendered{
			Subject: Subject(FollowUp2Subject, subjVars),
			HTML:    followUp2HTML(vars),
			Text:    followUp2Text(vars),
		}, nil
	default:
		return Rendered{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
}

func (v Variables) validate() error {
	if v.CustomerName == "" {
		return fmt.Errorf("%w: customerName", ErrMissingVariable)
	}
	if v.BusinessName == "" {
		return fmt.Errorf("%w: businessName", ErrMissingVariable)
	}
	if v.ReviewURL == "" {
		return fmt.Errorf("%w: reviewUrl", ErrMissingVariable)
	}
	u, err := url.Parse(v.ReviewURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: reviewUrl must be an absolute URL", ErrMissingVariable)
	}
	return nil
}

// ─── HTML BODIES ──────────────────────────────────────────────────────────────

func reviewRequestHTML(v Variables) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Review Request</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
        .content { background: white; padding: 30px; border: 1px solid #e1e5e9; border-top: none; }
        .cta-button { display: inline-block; background: #667eea; color: white; padding: 15px 30px; text-decoration: none; border-radius: 5px; font-weight: bold; margin: 20px 0; }
        .footer { background: #f8f9fa; padding: 20px; text-align: center; color: #6c757d; font-size: 14px; border-radius: 0 0 10px 10px; }
        .stars { font-size: 24px; color: #ffc107; margin: 15px 0; }
    </style>
</head>
<body>
    <div class="header">
        <h1>How was your experience?</h1>
        <div class="stars">⭐⭐⭐⭐⭐</div>
    </div>
    <div class="content">
        <p>Hi %s,</p>
        <p>Thank you for choosing <strong>%s</strong>! We hope you had an excellent experience with our service.</p>
        <p>Your feedback is incredibly valuable to us and helps other customers make informed decisions. Would you mind taking just 2 minutes to share your experience?</p>
        <div style="text-align: center;">
            <a href="%s" class="cta-button">Leave Your Review</a>
        </div>
        <p>If you had any issues or concerns, please don't hesitate to reach out to us directly. We're always here to help!</p>
        <p>Thank you for your time!</p>
        <p>Best regards,<br>The %s Team</p>
    </div>
    <div class="footer">
        <p>This email was sent because you recently used our services. If you believe this was sent in error, please ignore this message.</p>
    </div>
</body>
</html>`, v.CustomerName, v.BusinessName, v.ReviewURL, v.BusinessName)
}

func followUp1HTML(v Variables) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Follow-up Review Request</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #28a745 0%%, #20c997 100%%); color: white; padding: 25px; text-align: center; border-radius: 10px 10px 0 0; }
        .content { background: white; padding: 25px; border: 1px solid #e1e5e9; border-top: none; }
        .cta-button { display: inline-block; background: #28a745; color: white; padding: 12px 25px; text-decoration: none; border-radius: 5px; font-weight: bold; margin: 15px 0; }
        .footer { background: #f8f9fa; padding: 15px; text-align: center; color: #6c757d; font-size: 14px; border-radius: 0 0 10px 10px; }
    </style>
</head>
<body>
    <div class="header">
        <h2>Just a friendly reminder</h2>
        <p>Your opinion matters to us</p>
    </div>
    <div class="content">
        <p>Hi %s,</p>
        <p>We sent you a review request a few days ago and wanted to follow up in case you missed it.</p>
        <p>Your feedback about your experience with <strong>%s</strong> would mean the world to us and takes less than 2 minutes.</p>
        <div style="text-align: center;">
            <a href="%s" class="cta-button">Share Your Experience</a>
        </div>
        <p>If you've already left a review, thank you so much! If not, we'd be grateful for just a moment of your time.</p>
        <p>Warm regards,<br>The %s Team</p>
    </div>
    <div class="footer">
        <p>This is a follow-up to our previous message. You can safely ignore this if you've already provided feedback.</p>
    </div>
</body>
</html>`, v.CustomerName, v.BusinessName, v.ReviewURL, v.BusinessName)
}

func followUp2HTML(v Variables) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Final Review Request</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #fd7e14 0%%, #e83e8c 100%%); color: white; padding: 25px; text-align: center; border-radius: 10px 10px 0 0; }
        .content { background: white; padding: 25px; border: 1px solid #e1e5e9; border-top: none; }
        .cta-button { display: inline-block; background: #fd7e14; color: white; padding: 12px 25px; text-decoration: none; border-radius: 5px; font-weight: bold; margin: 15px 0; }
        .footer { background: #f8f9fa; padding: 15px; text-align: center; color: #6c757d; font-size: 14px; border-radius: 0 0 10px 10px; }
    </style>
</head>
<body>
    <div class="header">
        <h2>One last request</h2>
        <p>Help others discover great service</p>
    </div>
    <div class="content">
        <p>Hi %s,</p>
        <p>This is our final request for your feedback about your experience with <strong>%s</strong>.</p>
        <p>We understand you're busy, but your review helps other customers choose services with confidence. It truly makes a difference!</p>
        <div style="text-align: center;">
            <a href="%s" class="cta-button">Leave Quick Review</a>
        </div>
        <p>If you prefer not to receive these messages, we completely understand. This will be our last reminder.</p>
        <p>Thank you for considering it!</p>
        <p>Best wishes,<br>The %s Team</p>
    </div>
    <div class="footer">
        <p>This is our final follow-up message. No more reminders will be sent after this.</p>
    </div>
</body>
</html>`, v.CustomerName, v.BusinessName, v.ReviewURL, v.BusinessName)
}

// ─── TEXT BODIES ──────────────────────────────────────────────────────────────

func reviewRequestText(v Variables) string {
	return fmt.Sprintf(`Hi %s,

Thank you for choosing %s! We hope you had an excellent experience with our service.

Your feedback is incredibly valuable to us and helps other customers make informed decisions. Would you mind taking just 2 minutes to share your experience?

Leave your review here: %s

If you had any issues or concerns, please don't hesitate to reach out to us directly. We're always here to help!

Thank you for your time!

Best regards,
The %s Team
`, v.CustomerName, v.BusinessName, v.ReviewURL, v.BusinessName)
}

func followUp1Text(v Variables) string {
	return fmt.Sprintf(`Hi %s,

We sent you a review request a few days ago and wanted to follow up in case you missed it.

Your feedback about your experience with %s would mean the world to us and takes less than 2 minutes.

Share your experience: %s

If you've already left a review, thank you so much! If not, we'd be grateful for just a moment of your time.

Warm regards,
The %s Team
`, v.CustomerName, v.BusinessName, v.ReviewURL, v.BusinessName)
}

func followUp2Text(v Variables) string {
	return fmt.Sprintf(`Hi %s,

This is our final request for your feedback about your experience with %s.

We understand you're busy, but your review helps other customers choose services with confidence. It truly makes a difference!

Leave a quick review: %s

If you prefer not to receive these messages, we completely understand. This will be our last reminder.

Thank you for considering it!

Best wishes,
The %s Team
`, v.CustomerName, v.BusinessName, v.ReviewURL, v.BusinessName)
}
