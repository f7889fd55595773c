package account

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	minPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	maxPasswordLength = 72
	maxNameLength     = 100
	maxBioLength      = 1000
	maxLocationLength = 100
	maxURLLength      = 2048
)

//nolint: gochecknoglobals
var (
	usernameRe = regexp.MustCompile(`^[a-z0-9_]{3,30}$`)
	validate   = validator.New()
)

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func validUsername(username string) bool { return usernameRe.MatchString(username) }

func validEmail(email string) bool {
	return len(email) <= 254 && validate.Var(email, "required,email") == nil
}

func validPassword(password string) bool {
	return len(password) >= minPasswordLength && len(password) <= maxPasswordLength
}

func validURL(u string) bool {
	return len(u) <= maxURLLength && validate.Var(u, "required,http_url") == nil
}

func tooLong(s string, limit int) bool { return utf8.RuneCountInString(s) > limit }
