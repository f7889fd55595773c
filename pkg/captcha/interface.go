// Package captcha defines the human verification used on sign up.
package captcha

import "context"

// Verifier checks a client-side captcha token.
//
//go:generate mockgen -package mockcaptcha -source=interface.go -destination=mock/mockcaptcha.go *
type Verifier interface {
	// Verify returns a BAD_REQUEST semantic error when the token is rejected
	// and a plain error when the provider could not be reached.
	Verify(ctx context.Context, token, remoteIP string) error
}
