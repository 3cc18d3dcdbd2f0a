package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/nashriel/secureBank/config"
)

// SendEmail sends an HTML email through SMTP. It is a no-op when no sender is
// configured, so local setups run without mail credentials.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" {
		log.Printf("Email sender not configured, skipping mail %q", subject)
		return nil
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: SecureBank <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

// SendTransferAlert emails a sender that an outgoing transfer completed.
func SendTransferAlert(email, name, counterparty string, amount float64) {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">SecureBank Transfer Alert</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s,</p>
					<p style="font-size: 16px; color: #555555;">Your transfer of %.2f to %s has been completed.</p>
					<p style="font-size: 14px; color: #999999;">If this was not you, contact support immediately.</p>
				</div>
			</body>
		</html>
	`, name, amount, counterparty)

	if err := SendEmail([]string{email}, "Transfer completed", body); err != nil {
		log.Printf("Error sending transfer alert to %s: %v", email, err)
	}
}
