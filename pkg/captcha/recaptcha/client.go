// Package recaptcha provides a captcha.Verifier backed by Google reCAPTCHA v3.
package recaptcha

import (
	"context"
	"encoding/json"
	"io"
	"journal/pkg/captcha"
	"journal/pkg/serrors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-faster/errors"
)

const verifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Client verifies tokens against the siteverify endpoint. A client without a
// secret accepts every token, which is how captcha is disabled locally.
type Client struct {
	httpClient *http.Client
	secret     string
	minScore   float64
}

type verifyResp struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	ErrorCodes []string `json:"error-codes"`
}

func (c *Client) Verify(ctx context.Context, token, remoteIP string) error {
	if c.secret == "" {
		return nil
	}
	if token == "" {
		return serrors.With(serrors.ErrBadRequest, "captcha token is required")
	}

	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("siteverify failed: %s", strings.TrimSpace(string(b)))
	}

	var vr verifyResp
	if err := json.Unmarshal(b, &vr); err != nil {
		return errors.Wrap(err, "decode response")
	}
	if !vr.Success {
		return serrors.With(serrors.ErrBadRequest, "captcha rejected: %s", strings.Join(vr.ErrorCodes, ","))
	}
	if vr.Score < c.minScore {
		return serrors.With(serrors.ErrBadRequest, "captcha score too low")
	}

	return nil
}

var _ captcha.Verifier = (*Client)(nil)

// New constructs a Client. minScore applies to v3 scores in [0, 1].
func New(httpClient *http.Client, secret string, minScore float64) *Client {
	return &Client{
		httpClient: httpClient,
		secret:     secret,
		minScore:   minScore,
	}
}
