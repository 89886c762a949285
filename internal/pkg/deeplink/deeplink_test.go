// internal/pkg/deeplink/deeplink_test.go
package deeplink

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "255682843552", DigitsOnly("+255682843552"))
	assert.Equal(t, "255677014740", DigitsOnly("+255 677 014 740"))
	assert.Equal(t, "255763957908", DigitsOnly("(255) 763-957-908"))
	assert.Equal(t, "", DigitsOnly("no digits here"))
}

func TestWhatsApp(t *testing.T) {
	link := WhatsApp("+255682843552", "Hello, I need a quote.")

	parsed, err := url.Parse(link)
	require.NoError(t, err)

	assert.Equal(t, "https", parsed.Scheme)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/255682843552", parsed.Path)
	assert.Equal(t, "Hello, I need a quote.", parsed.Query().Get("text"))
}

func TestWhatsAppPreservesLineBreaks(t *testing.T) {
	message := "*ORDER REQUEST*\n\nLine one\nLine two"
	link := WhatsApp("+255682843552", message)

	parsed, err := url.Parse(link)
	require.NoError(t, err)

	// The destination app must receive the exact message after decoding.
	assert.Equal(t, message, parsed.Query().Get("text"))
	assert.False(t, strings.Contains(link, "\n"), "raw newlines must not appear in the URL")
}

func TestWhatsAppWithoutMessage(t *testing.T) {
	assert.Equal(t, "https://wa.me/255682843552", WhatsApp("+255682843552", ""))
}

func TestTel(t *testing.T) {
	assert.Equal(t, "tel:+255682843552", Tel("+255 682 843 552"))
	assert.Equal(t, "tel:0682843552", Tel("0682 843 552"))
}

func TestMailto(t *testing.T) {
	link := Mailto("Kinguelectricaltz@gmail.com", "Service Inquiry", "Hello,\nI need help.")

	require.True(t, strings.HasPrefix(link, "mailto:Kinguelectricaltz@gmail.com?"))

	query, err := url.ParseQuery(strings.SplitN(link, "?", 2)[1])
	require.NoError(t, err)
	assert.Equal(t, "Service Inquiry", query.Get("subject"))
	assert.Equal(t, "Hello,\nI need help.", query.Get("body"))
}

func TestMailtoBareAddress(t *testing.T) {
	assert.Equal(t, "mailto:info@example.com", Mailto("info@example.com", "", ""))
}
