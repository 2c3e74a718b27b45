// Package whatsapp builds wa.me deep links that open a chat with a
// pre-filled message.
package whatsapp

import (
	"net/url"
	"strings"
)

const baseURL = "https://wa.me/"

var phoneStrip = strings.NewReplacer(" ", "", " ", "", "+", "")

// NormalizePhone reduces a phone-number-like cell to bare digits: spaces and
// plus signs are stripped, and the value is truncated at the first dot. The
// truncation handles numbers that round-tripped through a floating-point
// import and grew a trailing ".0".
func NormalizePhone(raw string) string {
	s := phoneStrip.Replace(strings.TrimSpace(raw))
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return s
}

// Link builds a deep link for the given recipient and message body. With no
// usable phone the recipient segment is omitted and the link opens a generic
// compose view. The phone is never validated.
func Link(phone, body string) string {
	q := url.Values{"text": []string{body}}
	return baseURL + NormalizePhone(phone) + "?" + q.Encode()
}
