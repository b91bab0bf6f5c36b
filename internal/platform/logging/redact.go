package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the set of HTTP header names (lowercase) that carry
// credentials. The HTTP middleware uses it when dumping request headers.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// connURLPattern matches connection URLs that embed a password, such as
// "postgres://todos:hunter2@db:5432/todos". pgx includes the DSN in some
// connect errors.
var connURLPattern = regexp.MustCompile(`(?i)[a-z][a-z0-9+.\-]*://[^\s:/@]+:[^\s@]+@`)

// keywordPasswordPattern matches keyword/value DSNs ("password=hunter2").
var keywordPasswordPattern = regexp.MustCompile(`(?i)password\s*=\s*\S+`)

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. Fields are redacted by name first; values that escape
// call-site care are caught by regex.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+8)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("dsn"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret_"),

		masq.WithRegex(connURLPattern),
		masq.WithRegex(keywordPasswordPattern),
		masq.WithRegex(bearerPattern),
	)

	return masq.New(opts...)
}
