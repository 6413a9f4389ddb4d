package notification

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pobyzaarif/goshortcute"
)

type MailjetConfig struct {
	MailjetBaseURL           string
	MailjetBasicAuthUsername string
	MailjetBasicAuthPassword string
	MailjetSenderEmail       string
	MailjetSenderName        string
}

// MailjetRepository sends transactional storefront mail (order
// confirmation receipts) through the Mailjet send API.
type MailjetRepository struct {
	cfg       MailjetConfig
	client    *http.Client
	basicAuth string
}

func NewMailjetRepository(cfg MailjetConfig) *MailjetRepository {
	return &MailjetRepository{
		cfg:       cfg,
		client:    &http.Client{Timeout: 5 * time.Second},
		basicAuth: goshortcute.StringtoBase64Encode(cfg.MailjetBasicAuthUsername + ":" + cfg.MailjetBasicAuthPassword),
	}
}

type party struct {
	Email string `json:"Email"`
	Name  string `json:"Name"`
}

type message struct {
	From     party   `json:"From"`
	To       []party `json:"To"`
	Subject  string  `json:"Subject"`
	TextPart string  `json:"TextPart"`
	HTMLPart string  `json:"HTMLPart"`
}

type sendPayload struct {
	Messages []message `json:"Messages"`
}

func (r *MailjetRepository) SendEmail(toName, toEmail, subject, body string) error {
	payload := sendPayload{
		Messages: []message{{
			From: party{
				Email: r.cfg.MailjetSenderEmail,
				Name:  r.cfg.MailjetSenderName,
			},
			To:       []party{{Email: toEmail, Name: toName}},
			Subject:  subject,
			TextPart: body,
			HTMLPart: body,
		}},
	}

	payloadByte, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal json payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, r.cfg.MailjetBaseURL+"/v3.1/send", strings.NewReader(string(payloadByte)))
	if err != nil {
		return err
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Basic "+r.basicAuth)

	res, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil
	}
	resBody, _ := io.ReadAll(res.Body)

	return fmt.Errorf("mailer service returned %v: %s", res.StatusCode, string(resBody))
}
