package recaptcha_test

import (
	"context"
	"errors"
	"io"
	"journal/pkg/captcha/recaptcha"
	"journal/pkg/serrors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func respond(status int, body string) rtFunc {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	}
}

func TestClient_Verify_success(t *testing.T) {
	c := recaptcha.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "www.google.com", r.URL.Host)
		require.Equal(t, "/recaptcha/api/siteverify", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "secret", r.PostForm.Get("secret"))
		require.Equal(t, "tok", r.PostForm.Get("response"))
		require.Equal(t, "10.0.0.1", r.PostForm.Get("remoteip"))

		return respond(http.StatusOK, `{"success":true,"score":0.9}`)(r)
	})}, "secret", 0.5)

	require.NoError(t, c.Verify(context.Background(), "tok", "10.0.0.1"))
}

func TestClient_Verify_rejections(t *testing.T) {
	cases := []struct {
		name  string
		token string
		body  string
	}{
		{"missing token", "", `{"success":true,"score":1}`},
		{"unsuccessful", "tok", `{"success":false,"error-codes":["invalid-input-response"]}`},
		{"low score", "tok", `{"success":true,"score":0.1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := recaptcha.New(&http.Client{Transport: respond(http.StatusOK, tc.body)}, "secret", 0.5)
			err := c.Verify(context.Background(), tc.token, "")
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestClient_Verify_transportFailure(t *testing.T) {
	c := recaptcha.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: timeout")
	})}, "secret", 0.5)

	err := c.Verify(context.Background(), "tok", "")
	require.Error(t, err)
	require.NotErrorIs(t, err, serrors.ErrBadRequest)
}

func TestClient_Verify_disabled(t *testing.T) {
	c := recaptcha.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		t.Fatal("no request expected when captcha is disabled")

		return nil, nil
	})}, "", 0.5)

	require.NoError(t, c.Verify(context.Background(), "", ""))
}
