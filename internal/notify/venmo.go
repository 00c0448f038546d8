package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

const venmoBaseURL = "https://venmo.com"

// PaymentURL builds a Venmo payment-request deep link with a private audience.
func PaymentURL(payee string, amount decimal.Decimal, note string) string {
	return fmt.Sprintf("%s/%s?txn=pay&amount=%s&note=%s&audience=private",
		venmoBaseURL, url.PathEscape(payee), amount.String(), encodeURIComponent(note))
}

// PenaltyNote is the payment note attached to the request.
func PenaltyNote(bedtimeStr string) string {
	return "Bedtime penalty - went to bed at " + bedtimeStr
}

var uriComponentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent escapes everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func encodeURIComponent(s string) string {
	return uriComponentUnescape.Replace(url.QueryEscape(s))
}
