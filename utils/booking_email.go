package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

func smtpConfig() (host, port, user, pass, fromName string, ok bool) {
	host = os.Getenv("SMTP_HOST")
	port = os.Getenv("SMTP_PORT")
	user = os.Getenv("SMTP_USERNAME")
	pass = os.Getenv("SMTP_PASSWORD")
	fromName = os.Getenv("SMTP_FROM_NAME")
	ok = host != "" && port != "" && user != "" && pass != ""
	return
}

func sanitizeHeader(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
}

func sendMultipart(recipient, subject, plainBody, htmlBody string) error {
	host, port, user, pass, fromName, ok := smtpConfig()
	if !ok {
		log.Printf("[MOCK EMAIL] to:%s subject:%s", recipient, subject)
		return nil
	}

	from := fmt.Sprintf("%s <%s>", fromName, user)
	auth := smtp.PlainAuth("", user, pass, host)
	addr := fmt.Sprintf("%s:%s", host, port)
	boundary := "----=_EZSAIL_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, user, []string{recipient}, []byte(sb.String())); err != nil {
		log.Printf("Failed to send email to %s: %v", recipient, err)
		return err
	}
	log.Printf("Email sent to %s", recipient)
	return nil
}

// SendBookingConfirmationEmail mails a short booking summary to the
// concierge who placed it.
func SendBookingConfirmationEmail(recipient, referenceCode, boatName, dateTime, status string, finalPrice float64) error {
	referenceCode = sanitizeHeader(referenceCode)
	boatName = sanitizeHeader(boatName)

	subject := fmt.Sprintf("EzSail booking %s (%s)", referenceCode, status)

	plainBody := fmt.Sprintf(
		"Booking %s\n\n"+
			"Boat: %s\n"+
			"Date: %s\n"+
			"Status: %s\n"+
			"Final price: %.2f EUR\n",
		referenceCode, boatName, dateTime, status, finalPrice,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Booking %s</title></head>
<body style="font-family:Arial, Helvetica, sans-serif; color:#222;">
  <h2>Booking %s</h2>
  <table cellpadding="6">
    <tr><td><strong>Boat</strong></td><td>%s</td></tr>
    <tr><td><strong>Date</strong></td><td>%s</td></tr>
    <tr><td><strong>Status</strong></td><td>%s</td></tr>
    <tr><td><strong>Final price</strong></td><td>%.2f EUR</td></tr>
  </table>
</body>
</html>`,
		referenceCode, referenceCode, boatName, dateTime, status, finalPrice,
	)

	return sendMultipart(recipient, subject, plainBody, htmlBody)
}

// SendStaffInviteEmail tells a freshly provisioned operator/concierge user
// how to sign in.
func SendStaffInviteEmail(recipient, name, role string) error {
	name = sanitizeHeader(name)
	role = sanitizeHeader(role)

	loginURL := EnvOrDefault("FRONTEND_URL", "http://localhost:3000") + "/login"

	subject := "Your EzSail account"
	plainBody := fmt.Sprintf(
		"Hi %s,\n\n"+
			"An EzSail account with the %s role was created for you.\n"+
			"Sign in at %s with the password you were given.\n",
		name, role, loginURL,
	)
	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Welcome</title></head>
<body style="font-family:Arial, Helvetica, sans-serif; color:#222;">
  <p>Hi %s,</p>
  <p>An EzSail account with the <strong>%s</strong> role was created for you.</p>
  <p><a href="%s">Sign in</a> with the password you were given.</p>
</body>
</html>`,
		name, role, loginURL,
	)

	return sendMultipart(recipient, subject, plainBody, htmlBody)
}
