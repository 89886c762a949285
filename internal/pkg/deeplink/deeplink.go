// internal/pkg/deeplink/deeplink.go
package deeplink

import (
	"net/url"
	"strings"
)

// WhatsApp builds a wa.me link that opens a chat with the given number
// and the message pre-filled. The number is reduced to digits only
// (wa.me rejects "+" and spaces) and the message is percent-encoded so
// line breaks and punctuation survive the round trip.
func WhatsApp(number, message string) string {
	u := "https://wa.me/" + DigitsOnly(number)
	if message != "" {
		u += "?text=" + url.QueryEscape(message)
	}
	return u
}

// Tel builds a dialer link for the given number. Unlike wa.me, the
// tel scheme accepts the international "+" prefix, so it is kept.
func Tel(number string) string {
	digits := DigitsOnly(number)
	if strings.HasPrefix(strings.TrimSpace(number), "+") {
		return "tel:+" + digits
	}
	return "tel:" + digits
}

// Mailto builds a mail client link with optional subject and body.
func Mailto(address, subject, body string) string {
	u := "mailto:" + address

	params := url.Values{}
	if subject != "" {
		params.Set("subject", subject)
	}
	if body != "" {
		params.Set("body", body)
	}
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	return u
}

// DigitsOnly strips everything that is not a decimal digit from a
// phone number, e.g. "+255 682 843 552" -> "255682843552".
func DigitsOnly(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
