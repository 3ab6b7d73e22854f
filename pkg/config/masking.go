package config

import (
	"errors"
	"regexp"
)

// maskedValue replaces any matched secret material.
const maskedValue = "***MASKED***"

// secretPattern is a pre-compiled regex with the capture group that holds
// the secret portion of a match.
type secretPattern struct {
	name  string
	regex *regexp.Regexp
}

// secretPatterns covers the ways credentials leak into log lines: upstream
// request URLs carry API keys as query parameters, database errors echo the
// DSN, and HTTP client errors reproduce Authorization headers.
var secretPatterns = []secretPattern{
	{
		name:  "url_query_key",
		regex: regexp.MustCompile(`(?i)([?&](?:api_key|apikey|key|token|registrationkey|access_token)=)[^&\s"']+`),
	},
	{
		name:  "url_userinfo",
		regex: regexp.MustCompile(`(://[^/:@\s]+:)[^@\s]+(@)`),
	},
	{
		name:  "dsn_password",
		regex: regexp.MustCompile(`(?i)(password=)[^\s&]+`),
	},
	{
		name:  "bearer_token",
		regex: regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9._~+/=-]+`),
	},
	{
		name:  "openai_key",
		regex: regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{10,}\b`),
	},
}

// MaskSecrets replaces credential material embedded in s. Safe to call on
// anything headed for a log line or an API error payload; non-secret text
// passes through untouched.
func MaskSecrets(s string) string {
	for _, p := range secretPatterns {
		switch p.regex.NumSubexp() {
		case 0:
			s = p.regex.ReplaceAllString(s, maskedValue)
		case 1:
			s = p.regex.ReplaceAllString(s, "${1}"+maskedValue)
		default:
			s = p.regex.ReplaceAllString(s, "${1}"+maskedValue+"${2}")
		}
	}
	return s
}

// MaskSecretsErr masks credential material in an error's message. The
// original error chain is dropped; use only at reporting boundaries.
func MaskSecretsErr(err error) error {
	if err == nil {
		return nil
	}
	return errors.New(MaskSecrets(err.Error()))
}
