package utils

import (
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendEmail delivers one HTML mail through the hospital's SMTP account.
// The environment is loaded once at startup by db.Init, so the SMTP
// settings are read straight from it here.
func SendEmail(to, subject, body string) error {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	from := os.Getenv("EMAIL_USER")

	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, "MediCore Hospital")
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(os.Getenv("SMTP_HOST"), port, from, os.Getenv("EMAIL_PASS"))
	return d.DialAndSend(m)
}
