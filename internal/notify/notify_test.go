package notify_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/brendanm12345/bedtime-bully/internal"
	"github.com/brendanm12345/bedtime-bully/internal/notify"
	"github.com/brendanm12345/bedtime-bully/internal/testutil"
)

func TestPaymentURL(t *testing.T) {
	link := notify.PaymentURL("friend-handle", decimal.NewFromInt(1), notify.PenaltyNote("01:15:00 AM"))

	assert.Equal(t,
		"https://venmo.com/friend-handle?txn=pay&amount=1&note=Bedtime%20penalty%20-%20went%20to%20bed%20at%2001%3A15%3A00%20AM&audience=private",
		link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "pay", u.Query().Get("txn"))
	assert.Equal(t, "1", u.Query().Get("amount"))
	assert.Equal(t, "private", u.Query().Get("audience"))
	assert.Equal(t, "Bedtime penalty - went to bed at 01:15:00 AM", u.Query().Get("note"))
}

func TestPaymentURL_EncodesLikeURIComponent(t *testing.T) {
	link := notify.PaymentURL("me", decimal.RequireFromString("2.50"), "it's (late)! *again* ~ & =")
	assert.Contains(t, link, "amount=2.5&")
	assert.Contains(t, link, "note=it's%20(late)!%20*again*%20~%20%26%20%3D&")
}

func TestPaymentURL_EscapesPayee(t *testing.T) {
	link := notify.PaymentURL("a b/c?d", decimal.NewFromInt(1), "late")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/a b/c?d", u.Path)
	assert.Equal(t, "pay", u.Query().Get("txn"))
	assert.True(t, strings.HasPrefix(link, "https://venmo.com/a%20b%2Fc%3Fd?txn=pay&"))
}

func penaltyEvent() internal.PenaltyEvent {
	amount := decimal.NewFromInt(1)
	return internal.PenaltyEvent{
		BedtimeStr: "01:15:00 AM",
		Target:     "12:30 AM",
		Amount:     amount,
		Payee:      "friend-handle",
		PaymentURL: notify.PaymentURL("friend-handle", amount, notify.PenaltyNote("01:15:00 AM")),
	}
}

func TestRender(t *testing.T) {
	event := penaltyEvent()
	content, err := notify.Render(event)
	require.NoError(t, err)

	assert.Equal(t, "🛏️ Bedtime Penalty - You owe $1!", content.Subject)

	for _, want := range []string{"Bedtime: 01:15:00 AM", "Target: 12:30 AM", "You owe $1 to @friend-handle.", "Pay here: " + event.PaymentURL} {
		assert.Contains(t, content.Text, want)
	}

	assert.Contains(t, content.HTML, "<strong>Bedtime:</strong> 01:15:00 AM")
	assert.Contains(t, content.HTML, "<strong>Target:</strong> 12:30 AM")
	assert.Contains(t, content.HTML, "You owe <strong>$1</strong> to @friend-handle.")
	assert.Contains(t, content.HTML, strings.ReplaceAll(event.PaymentURL, "&", "&amp;"))
	assert.Contains(t, content.HTML, "Pay $1 on Venmo")
}

func TestRender_EscapesHTML(t *testing.T) {
	event := penaltyEvent()
	event.Payee = "<script>"
	content, err := notify.Render(event)
	require.NoError(t, err)
	assert.NotContains(t, content.HTML, "<script>")
	assert.Contains(t, content.Text, "@<script>")
}

func TestNotifier_SendsToPrimaryWithCopy(t *testing.T) {
	sender := &testutil.RecordingSender{}
	n := notify.NewNotifier(sender, "me@example.com", "me@example.com", "friend@example.com", internal.NopLogger())

	id, err := n.Notify(context.Background(), penaltyEvent())
	require.NoError(t, err)
	assert.Equal(t, "<test-1@bedtime.local>", id)

	sent := sender.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "me@example.com", sent[0].From)
	assert.Equal(t, "me@example.com", sent[0].To)
	assert.Equal(t, "friend@example.com", sent[0].Cc)
	assert.Contains(t, sent[0].Subject, "$1")
	assert.NotEmpty(t, sent[0].HTML)
	assert.NotEmpty(t, sent[0].Text)
}

func TestNotifier_SendFailureIsMailError(t *testing.T) {
	sender := &testutil.RecordingSender{Err: errors.New("535 authentication failed")}
	n := notify.NewNotifier(sender, "me@example.com", "me@example.com", "friend@example.com", internal.NopLogger())

	_, err := n.Notify(context.Background(), penaltyEvent())
	require.Error(t, err)
	assert.True(t, errors.Is(err, internal.ErrMail))
	assert.Contains(t, err.Error(), "535 authentication failed")
}

func TestBuildMessage(t *testing.T) {
	m, err := notify.BuildMessage(notify.Message{
		From:    "me@example.com",
		To:      "me@example.com",
		Cc:      "friend@example.com",
		Subject: "🛏️ Bedtime Penalty - You owe $1!",
		HTML:    "<p>late</p>",
		Text:    "late",
	})
	require.NoError(t, err)

	to := m.GetToString()
	require.Len(t, to, 1)
	assert.Contains(t, to[0], "me@example.com")
	cc := m.GetCcString()
	require.Len(t, cc, 1)
	assert.Contains(t, cc[0], "friend@example.com")
	subject := m.GetGenHeader(mail.HeaderSubject)
	require.Len(t, subject, 1)
	assert.Contains(t, subject[0], "$1")
	assert.NotEmpty(t, m.GetMessageID())
}

func TestBuildMessage_InvalidAddress(t *testing.T) {
	_, err := notify.BuildMessage(notify.Message{From: "not an address", To: "me@example.com"})
	assert.Error(t, err)
}
