package mail

import (
	"html/template"
	"strings"
	"time"
)

var resetEmailTmpl = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:Arial,sans-serif;">
  <div style="padding:20px;background-color:#f4f4f4;">
    <div style="max-width:600px;margin:auto;background-color:#ffffff;padding:30px;border-radius:5px;line-height:1.6;color:#333333;">
      <h2 style="color:#333333;">Password Reset Request</h2>
      <p>Hello,</p>
      <p>We received a request to reset the password for the {{.AppName}} account associated with the email address: <strong>{{.Email}}</strong>.</p>
      <p>To reset your password, please click the button below. Please note that this link is time-sensitive and will expire for security reasons.</p>
      <div style="text-align:center;">
        <a href="{{.Link}}" target="_blank" style="display:inline-block;padding:12px 25px;margin:20px 0;background-color:#007bff;color:#ffffff !important;text-decoration:none;font-weight:bold;border-radius:5px;text-align:center;">Reset Your Password</a>
      </div>
      <p style="margin-top:15px;font-size:0.9em;color:#555555;">
        If the button above does not work, please copy and paste the following URL into your web browser:<br>
        <a href="{{.Link}}" target="_blank" style="word-break:break-all;color:#007bff;">{{.Link}}</a>
      </p>
      <p>If you did not request a password reset, you do not need to take any further action and can safely ignore this email. Your account password will remain unchanged.</p>
      <p>Sincerely,<br>The {{.AppName}} Team</p>
    </div>
    <div style="margin-top:20px;font-size:0.8em;color:#777777;text-align:center;">
      <p>This email was sent from {{.AppName}} regarding your account security.</p>
      <p>&copy; {{.Year}} {{.AppName}}. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`))

// RenderResetEmail renders the password-reset notification around a
// provider-hosted reset link.
func RenderResetEmail(appName, email, link string) (string, error) {
	var b strings.Builder
	err := resetEmailTmpl.Execute(&b, struct {
		AppName string
		Email   string
		Link    string
		Year    int
	}{
		AppName: appName,
		Email:   email,
		Link:    link,
		Year:    time.Now().Year(),
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
