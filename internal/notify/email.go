package notify

import (
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/brendanm12345/bedtime-bully/internal"
)

// Content is a rendered penalty email.
type Content struct {
	Subject string
	HTML    string
	Text    string
}

const htmlBody = `
<h2>You went to bed late!</h2>
<p><strong>Bedtime:</strong> {{.BedtimeStr}}</p>
<p><strong>Target:</strong> {{.Target}}</p>
<p>You owe <strong>${{.Amount}}</strong> to @{{.Payee}}.</p>
<p style="margin: 20px 0;">
  <a href="{{.PaymentURL}}" style="background-color:rgb(86, 169, 237); color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; font-weight: bold;">
    Pay ${{.Amount}} on Venmo
  </a>
</p>
<p style="color: #666; font-size: 12px;">This is an automated message from your bedtime accountability app.</p>
`

const textBody = `You went to bed late!

Bedtime: {{.BedtimeStr}}
Target: {{.Target}}

You owe ${{.Amount}} to @{{.Payee}}.

Pay here: {{.PaymentURL}}`

var (
	htmlTmpl = htmltemplate.Must(htmltemplate.New("penalty.html").Parse(htmlBody))
	textTmpl = texttemplate.Must(texttemplate.New("penalty.txt").Parse(textBody))
)

type templateData struct {
	BedtimeStr string
	Target     string
	Amount     string
	Payee      string
	PaymentURL htmltemplate.URL
}

// Render produces the subject and both bodies for a penalty.
func Render(event internal.PenaltyEvent) (Content, error) {
	data := templateData{
		BedtimeStr: event.BedtimeStr,
		Target:     event.Target,
		Amount:     event.Amount.String(),
		Payee:      event.Payee,
		PaymentURL: htmltemplate.URL(event.PaymentURL),
	}

	var html, text strings.Builder
	if err := htmlTmpl.Execute(&html, data); err != nil {
		return Content{}, err
	}
	if err := textTmpl.Execute(&text, data); err != nil {
		return Content{}, err
	}
	return Content{
		Subject: "🛏️ Bedtime Penalty - You owe $" + data.Amount + "!",
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
