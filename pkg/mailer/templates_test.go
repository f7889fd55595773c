package mailer_test

import (
	"journal/pkg/mailer"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplates_Render(t *testing.T) {
	tmpls, err := mailer.LoadTemplates()
	require.NoError(t, err)

	for _, name := range []string{
		mailer.TemplateWelcome,
		mailer.TemplateSponsorshipReceived,
		mailer.TemplatePayoutPaid,
		mailer.TemplatePayoutFailed,
	} {
		subject, body, err := tmpls.Render(name, map[string]string{
			"username": "alice",
			"sponsor":  "bob",
			"amount":   "$25.00",
			"reason":   "account closed",
		})
		require.NoError(t, err, name)
		require.NotEmpty(t, subject, name)
		require.Contains(t, body, "alice", name)
	}

	subject, body, err := tmpls.Render(mailer.TemplateSponsorshipReceived, map[string]string{
		"username": "alice",
		"sponsor":  "bob",
		"amount":   "$5.00",
		"message":  "keep going",
	})
	require.NoError(t, err)
	require.Equal(t, "bob sponsored you", subject)
	require.Contains(t, body, `They wrote: "keep going"`)

	_, body, err = tmpls.Render(mailer.TemplateSponsorshipReceived, map[string]string{
		"username": "alice",
		"sponsor":  "bob",
		"amount":   "$5.00",
		"message":  "fish &amp; chips &lt;3",
	})
	require.NoError(t, err)
	require.Contains(t, body, `They wrote: "fish & chips <3"`)

	_, _, err = tmpls.Render("nope", nil)
	require.ErrorIs(t, err, mailer.ErrUnknownTemplate)
}
