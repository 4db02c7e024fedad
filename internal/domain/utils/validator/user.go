package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

var clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func Email(email string) bool {
	_, err := mail.ParseAddress(strings.TrimSpace(email))
	return err == nil
}

// Name requires at least a first and last name.
func Name(name string) bool {
	return len(strings.Fields(strings.TrimSpace(name))) >= 2
}

// Clock reports whether s is a 24h HH:MM time.
func Clock(s string) bool {
	return clockRe.MatchString(s)
}
