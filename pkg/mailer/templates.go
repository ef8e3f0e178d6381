package mailer

import (
	"bytes"
	"html/template"
)

var verifyTmpl = template.Must(template.New("verify").Parse(`
<div>
    <p>Click on the link below to verify your email</p>
    <a href="{{.Link}}">Verify</a>
</div>`))

var resetTmpl = template.Must(template.New("reset").Parse(`
<a href="{{.Link}}">Click here to reset your password</a>`))

type linkData struct {
	Link string
}

// VerifyEmailHTML renders the account-verification email body.
func VerifyEmailHTML(link string) (string, error) {
	return renderLink(verifyTmpl, link)
}

// ResetPasswordHTML renders the password-reset email body.
func ResetPasswordHTML(link string) (string, error) {
	return renderLink(resetTmpl, link)
}

func renderLink(t *template.Template, link string) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, linkData{Link: link}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
