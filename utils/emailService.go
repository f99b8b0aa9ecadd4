package utils

import (
	"coursehub-backend/config"
	"fmt"
	"net/smtp"
	"strings"
)

// SendEmail sends an HTML email through the configured SMTP account
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.EmailPassword

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Learning Platform Admin <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
			.header { background: linear-gradient(135deg, #ef4444, #dc2626); color: white; padding: 30px 20px; text-align: center; border-radius: 8px 8px 0 0; }
			.content { background: white; padding: 30px 20px; border: 1px solid #e5e7eb; }
			.credentials-box { background: #f9fafb; border: 2px solid #e5e7eb; border-radius: 8px; padding: 20px; margin: 20px 0; }
			.login-button { display: inline-block; background: #ef4444; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px; font-weight: bold; margin: 20px 0; }
			.footer { background: #f3f4f6; padding: 20px; text-align: center; font-size: 12px; color: #6b7280; border-radius: 0 0 8px 8px; }
			.warning { background: #fef3c7; border: 1px solid #f59e0b; color: #92400e; padding: 15px; border-radius: 6px; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="header">
			<h1>%s</h1>
		</div>
		<div class="content">
			%s
		</div>
		<div class="footer">
			<p>This is an automated email. Please do not reply to this message.</p>
			<p>&copy; 2026 Learning Platform. All rights reserved.</p>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendInstructorWelcomeEmail mails the generated credentials to a freshly
// created instructor. Sent synchronously on the add-instructor path: the
// caller decides what to do when delivery fails.
func SendInstructorWelcomeEmail(email, name, tempPassword string) error {
	loginURL := config.AppConfig.FrontendURL + "/login"

	subject := "Welcome! Your Instructor Account is Ready"
	body := fmt.Sprintf(`
		<h2>Hello %s,</h2>
		<p>Congratulations! You have been added as an instructor to our learning platform. You now have access to manage your assigned courses and help students achieve their learning goals.</p>
		<div class="credentials-box">
			<h3>Your Login Credentials:</h3>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Password:</strong> <code>%s</code></p>
		</div>
		<div class="warning">
			<strong>Important Security Notice:</strong><br>
			Please change your password immediately after your first login.
		</div>
		<div style="text-align: center;">
			<a href="%s" class="login-button">Login to Dashboard</a>
		</div>
		<p>Best regards,<br><strong>The Admin Team</strong></p>
	`, name, email, tempPassword, loginURL)

	return SendEmail([]string{email}, subject, getEmailTemplate("Welcome to Our Learning Platform!", body))
}
