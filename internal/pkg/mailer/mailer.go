// Package mailer relays placement-cell announcements over SMTP using a
// fixed HTML template.
package mailer

import (
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Mailer defines the interface for outbound email.
type Mailer interface {
	Send(to []string, subject, body string) error
}

// SMTPConfig holds configuration for the SMTP server.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
	BannerURL string // header image embedded at the top of every email
}

type smtpMailer struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewMailer creates an SMTP-backed Mailer.
func NewMailer(config SMTPConfig, logger zerolog.Logger) Mailer {
	return &smtpMailer{
		config: config,
		logger: logger,
	}
}

// Send renders the announcement template and delivers it to every
// recipient in a single SMTP transaction.
func (m *smtpMailer) Send(to []string, subject, body string) error {
	// Without credentials, log instead of sending (development mode)
	if m.config.Username == "" || m.config.Password == "" {
		m.logger.Warn().
			Strs("to", to).
			Str("subject", subject).
			Msg("SMTP credentials not configured - email not sent")
		return nil
	}

	htmlBody := RenderBody(m.config.BannerURL, subject, body)

	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", m.config.FromName, m.config.FromEmail)
	headers["To"] = strings.Join(to, ", ")
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	serverAddress := m.config.Host + ":" + strconv.Itoa(m.config.Port)
	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)

	if m.config.UseTLS {
		return m.sendTLS(serverAddress, auth, to, []byte(message))
	}

	if err := smtp.SendMail(serverAddress, auth, m.config.FromEmail, to, []byte(message)); err != nil {
		m.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (m *smtpMailer) sendTLS(serverAddress string, auth smtp.Auth, to []string, message []byte) error {
	tlsConfig := &tls.Config{
		ServerName: m.config.Host,
	}

	conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
	if err != nil {
		m.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err = client.Auth(auth); err != nil {
		m.logger.Error().Err(err).Msg("SMTP authentication failed")
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err = client.Mail(m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, rcpt := range to {
		if err = client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write(message); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return nil
}

// RenderBody builds the announcement HTML: optional banner image, the
// subject as heading, and the plain-text body with newlines converted
// to <br> tags. The body is HTML-escaped before conversion.
func RenderBody(bannerURL, subject, body string) string {
	escaped := template.HTMLEscapeString(body)
	paragraphs := strings.ReplaceAll(escaped, "\n", "<br>")

	banner := ""
	if bannerURL != "" {
		banner = fmt.Sprintf(`<img src="%s" alt="" style="width: 100%%; max-width: 600px;">`, bannerURL)
	}

	return fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				%s
				<h2 style="color: #333;">%s</h2>
				<p>%s</p>
				<p>Best regards,<br>Training &amp; Placement Cell</p>
			</div>
		</body>
		</html>
	`, banner, template.HTMLEscapeString(subject), paragraphs)
}
