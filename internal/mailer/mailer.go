// Package mailer delivers the rendered ficha to the applicant's inbox as a
// PDF attachment over SMTP.
package mailer

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"strings"
)

// Config holds the SMTP transport settings
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	UseTLS   bool
}

// Mailer sends ficha emails. A nil Mailer (or one without a host) is
// disabled: registration succeeds without any delivery attempt.
type Mailer struct {
	config Config
}

// New creates a Mailer from the given transport settings
func New(config Config) *Mailer {
	return &Mailer{config: config}
}

// Enabled reports whether email delivery is configured
func (m *Mailer) Enabled() bool {
	return m != nil && m.config.Host != ""
}

// SendFicha emails the rendered slip to the applicant
func (m *Mailer) SendFicha(ctx context.Context, to, nombre string, fichaID int64, pdfBytes []byte) error {
	if !m.Enabled() {
		return fmt.Errorf("mailer is not configured")
	}
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("empty recipient address")
	}

	message := buildFichaMessage(m.config.From, to, nombre, fichaID, pdfBytes)
	return m.sendSMTP(ctx, to, []byte(message))
}

// buildFichaMessage assembles a multipart/mixed RFC 5322 message with an
// HTML body and the PDF slip as a base64 attachment
func buildFichaMessage(from, to, nombre string, fichaID int64, pdfBytes []byte) string {
	const boundary = "=_ficha_boundary"

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("From: %s\r\n", from))
	builder.WriteString(fmt.Sprintf("To: %s\r\n", to))
	builder.WriteString(fmt.Sprintf("Subject: Ficha de Registro #%d\r\n", fichaID))
	builder.WriteString("MIME-Version: 1.0\r\n")
	builder.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n", boundary))
	builder.WriteString("\r\n")

	// HTML body part
	builder.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	builder.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	builder.WriteString("\r\n")
	if strings.TrimSpace(nombre) == "" {
		builder.WriteString("<p>Hola, adjuntamos tu ficha.</p>\r\n")
	} else {
		builder.WriteString(fmt.Sprintf("<p>Hola %s, adjuntamos tu ficha.</p>\r\n", nombre))
	}

	// PDF attachment part
	builder.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	builder.WriteString("Content-Type: application/pdf\r\n")
	builder.WriteString("Content-Transfer-Encoding: base64\r\n")
	builder.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n", fmt.Sprintf("ficha_%d.pdf", fichaID)))
	builder.WriteString("\r\n")
	builder.WriteString(wrapBase64(base64.StdEncoding.EncodeToString(pdfBytes)))
	builder.WriteString("\r\n")

	builder.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return builder.String()
}

// wrapBase64 folds encoded content at 76 columns per RFC 2045
func wrapBase64(encoded string) string {
	const lineLen = 76
	var builder strings.Builder
	for len(encoded) > lineLen {
		builder.WriteString(encoded[:lineLen])
		builder.WriteString("\r\n")
		encoded = encoded[lineLen:]
	}
	builder.WriteString(encoded)
	return builder.String()
}

func (m *Mailer) sendSMTP(ctx context.Context, to string, message []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled before sending email: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	var auth smtp.Auth
	if m.config.Username != "" && m.config.Password != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	if m.config.UseTLS {
		return m.sendWithTLS(addr, auth, to, message)
	}

	return smtp.SendMail(addr, auth, m.config.From, []string{to}, message)
}

func (m *Mailer) sendWithTLS(addr string, auth smtp.Auth, to string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName: m.config.Host,
	}

	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err = client.Mail(m.config.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient %s: %w", to, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data writer: %w", err)
	}

	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}
