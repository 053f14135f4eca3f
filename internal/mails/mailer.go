package mails

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/mail"
	"time"

	gomail "github.com/go-mail/mail/v2"
)

//go:embed "templates"
var templateFS embed.FS

// Mailer sends templated emails over SMTP. Each Send makes one attempt.
type Mailer struct {
	Dialer *gomail.Dialer
	Sender string
}

func New(host string, port int, timeout time.Duration, username, password, sender string) *Mailer {
	dialer := gomail.NewDialer(host, port, username, password)
	dialer.Timeout = timeout
	return &Mailer{
		Dialer: dialer,
		Sender: sender,
	}
}

func parseEmailTmpl(tmplName string, tmplData any) (map[string]string, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/"+tmplName)
	if err != nil {
		return nil, err
	}
	tmplPartials := map[string]string{
		"subject":   "",
		"plainBody": "",
		"htmlBody":  "",
	}
	for key := range tmplPartials {
		buff := new(bytes.Buffer)
		if err = tmpl.ExecuteTemplate(buff, key, tmplData); err != nil {
			return nil, err
		}
		tmplPartials[key] = buff.String()
	}
	return tmplPartials, nil
}

func (m *Mailer) Send(recipient string, tmplName string, tmplData any) error {
	tmplPartials, err := parseEmailTmpl(tmplName, tmplData)
	if err != nil {
		return err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("To", recipient)
	msg.SetHeader("From", m.Sender)
	msg.SetHeader("Subject", tmplPartials["subject"])
	msg.SetBody("text/plain", tmplPartials["plainBody"])
	msg.AddAlternative("text/html", tmplPartials["htmlBody"])
	return m.Dialer.DialAndSend(msg)
}

const DefaultApiURL = "https://send.api.mailtrap.io/api/send"

// ApiMailer sends emails through an HTTP mail API (mailtrap compatible).
type ApiMailer struct {
	ApiURL   string
	ApiToken string
	Sender   string
	Client   *http.Client
}

func NewApiMailer(apiURL, apiToken, sender string, timeout time.Duration) *ApiMailer {
	if apiURL == "" {
		apiURL = DefaultApiURL
	}
	return &ApiMailer{
		ApiURL:   apiURL,
		ApiToken: apiToken,
		Sender:   sender,
		Client:   &http.Client{Timeout: timeout},
	}
}

func (m *ApiMailer) Send(recipient string, tmplName string, tmplData any) error {
	tmplPartials, err := parseEmailTmpl(tmplName, tmplData)
	if err != nil {
		return err
	}
	// Sender is either "Name <addr>" or a bare address.
	from, err := mail.ParseAddress(m.Sender)
	if err != nil {
		return fmt.Errorf("invalid sender %q: %w", m.Sender, err)
	}
	payload, err := json.Marshal(map[string]any{
		"from":    map[string]string{"email": from.Address, "name": from.Name},
		"to":      []map[string]string{{"email": recipient}},
		"subject": tmplPartials["subject"],
		"text":    tmplPartials["plainBody"],
		"html":    tmplPartials["htmlBody"],
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, m.ApiURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Add("Authorization", "Bearer "+m.ApiToken)
	req.Header.Set("Content-Type", "application/json")
	resp, err := m.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var bodyParsed map[string]any
	if err = json.Unmarshal(body, &bodyParsed); err == nil {
		if errs, ok := bodyParsed["errors"]; ok {
			return fmt.Errorf("failed to send email: %v", errs)
		}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("failed to send email: status %d", resp.StatusCode)
	}
	return nil
}
