package sanitize_test

import (
	"journal/pkg/sanitize"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTML(t *testing.T) {
	got := sanitize.HTML(`<p>Day <b>one</b><script>alert(1)</script></p><img src="x" onerror="alert(1)">`)
	require.NotContains(t, got, "script")
	require.NotContains(t, got, "onerror")
	require.Contains(t, got, "<b>one</b>")

	link := sanitize.HTML(`<a href="https://example.com">map</a>`)
	require.Contains(t, link, "nofollow")
	require.Contains(t, link, "noopener")
	require.Contains(t, link, `target="_blank"`)

	require.Empty(t, sanitize.HTML(`<a href="javascript:alert(1)"></a>`))
}

func TestText(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Crossing the Andes ", "Crossing the Andes"},
		{"<b>Bold</b> move", "Bold move"},
		{"Fish & chips", "Fish &amp; chips"},
		{"<script>alert(1)</script>", ""},
		{"&lt;img src=x onerror=alert(1)&gt;", "&lt;img src=x onerror=alert(1)&gt;"},
		{"&#60;script&#62;alert(1)&#60;/script&#62;", "&lt;script&gt;alert(1)&lt;/script&gt;"},
	}
	for _, tc := range cases {
		got := sanitize.Text(tc.in)
		require.Equal(t, tc.want, got, tc.in)
		require.NotContains(t, got, "<", tc.in)
	}
}

func TestPlain(t *testing.T) {
	require.Equal(t, "Fish & chips", sanitize.Plain(sanitize.Text("Fish & chips")))
	require.Equal(t, `"keep going"`, sanitize.Plain(sanitize.Text(`"keep going"`)))
}
