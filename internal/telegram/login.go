// Package telegram implements Telegram login payload classification and
// Web App signature verification.
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrMissingID         = errors.New("telegram id is required")
	ErrMissingAuthDate   = errors.New("auth_date is required")
	ErrUnknownAuthType   = errors.New("unknown auth_type")
	ErrInvalidSignature  = errors.New("invalid Web App signature")
	ErrStaleCredential   = errors.New("auth data is older than 24 hours")
	ErrMockAuthDisabled  = errors.New("mock authentication is disabled")
	ErrBotTokenNotSet    = errors.New("bot token is not configured")
)

// Identity is the profile every login variant carries.
type Identity struct {
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
}

// Login is a classified Telegram credential. Exactly one of the three
// concrete types is produced per inbound payload.
type Login interface {
	AuthType() string
	Profile() Identity
}

// MockLogin carries unverified identity fields. Development only.
type MockLogin struct {
	Identity
}

// WebAppLogin carries the raw field set and the signature to check it with.
type WebAppLogin struct {
	Identity
	Hash   string
	Fields map[string]string
}

// OAuthLogin is the legacy widget login: timestamp-checked, unsigned.
type OAuthLogin struct {
	Identity
	AuthDate int64
}

func (m MockLogin) AuthType() string   { return "mock" }
func (m MockLogin) Profile() Identity  { return m.Identity }
func (w WebAppLogin) AuthType() string { return "webapp" }
func (w WebAppLogin) Profile() Identity { return w.Identity }
func (o OAuthLogin) AuthType() string  { return "oauth" }
func (o OAuthLogin) Profile() Identity { return o.Identity }

// FlattenPayload converts a decoded JSON object into the string field map
// the signature canonicalization operates on. Numbers keep their wire form
// when decoded with json.Number.
func FlattenPayload(payload map[string]interface{}) map[string]string {
	fields := make(map[string]string, len(payload))
	for k, v := range payload {
		switch val := v.(type) {
		case string:
			fields[k] = val
		case json.Number:
			fields[k] = val.String()
		case bool:
			fields[k] = strconv.FormatBool(val)
		case float64:
			fields[k] = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			raw, _ := json.Marshal(val)
			fields[k] = string(raw)
		}
	}
	return fields
}

// ParseLogin classifies a Telegram auth payload into one of the login
// variants. When auth_type is absent it auto-detects: a signature field
// plus a configured bot token means Web App; a valid signature confirms it
// and an invalid one downgrades to the legacy oauth path; no signature
// field means mock.
func ParseLogin(fields map[string]string, botToken string) (Login, error) {
	switch fields["auth_type"] {
	case "mock":
		return parseMock(fields), nil
	case "webapp":
		return parseWebApp(fields)
	case "oauth":
		return parseOAuth(fields)
	case "":
		return autoDetect(fields, botToken)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAuthType, fields["auth_type"])
	}
}

func autoDetect(fields map[string]string, botToken string) (Login, error) {
	if _, hasHash := fields["hash"]; hasHash && botToken != "" {
		if VerifySignature(fields, botToken) {
			return parseWebApp(fields)
		}
		// Legacy widget payloads fail the Web App derivation.
		return parseOAuth(fields)
	}
	return parseMock(fields), nil
}

func parseMock(fields map[string]string) MockLogin {
	id, err := strconv.ParseInt(fields["id"], 10, 64)
	if err != nil || id == 0 {
		id = 123456789
	}
	ident := identityFromFields(fields, id)
	if ident.FirstName == "" {
		ident.FirstName = "Test"
	}
	if fields["last_name"] == "" && fields["first_name"] == "" {
		ident.LastName = "User"
	}
	if ident.Username == "" {
		ident.Username = fmt.Sprintf("user_%d", id)
	}
	return MockLogin{Identity: ident}
}

func parseWebApp(fields map[string]string) (WebAppLogin, error) {
	id, err := strconv.ParseInt(fields["id"], 10, 64)
	if err != nil {
		return WebAppLogin{}, ErrMissingID
	}
	return WebAppLogin{
		Identity: identityFromFields(fields, id),
		Hash:     fields["hash"],
		Fields:   fields,
	}, nil
}

func parseOAuth(fields map[string]string) (OAuthLogin, error) {
	id, err := strconv.ParseInt(fields["id"], 10, 64)
	if err != nil {
		return OAuthLogin{}, ErrMissingID
	}
	authDate, err := strconv.ParseInt(fields["auth_date"], 10, 64)
	if err != nil {
		return OAuthLogin{}, ErrMissingAuthDate
	}
	return OAuthLogin{
		Identity: identityFromFields(fields, id),
		AuthDate: authDate,
	}, nil
}

func identityFromFields(fields map[string]string, id int64) Identity {
	ident := Identity{
		TelegramID: id,
		Username:   fields["username"],
		FirstName:  fields["first_name"],
		LastName:   fields["last_name"],
	}
	if ident.Username == "" {
		ident.Username = ident.FirstName
	}
	return ident
}

// ComputeSignature builds the canonical data-check string (all fields
// except hash, sorted by key, joined as key=value lines) and signs it with
// the Web App secret derived from the bot token.
func ComputeSignature(fields map[string]string, botToken string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = k + "=" + fields[k]
	}
	dataCheckString := strings.Join(lines, "\n")

	// Two-stage derivation: the Web App secret is HMAC-SHA256 of the bot
	// token keyed with the fixed "WebAppData" label.
	keyer := hmac.New(sha256.New, []byte("WebAppData"))
	keyer.Write([]byte(botToken))
	secret := keyer.Sum(nil)

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(dataCheckString))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the payload's hash field against the computed
// signature in constant time.
func VerifySignature(fields map[string]string, botToken string) bool {
	received, ok := fields["hash"]
	if !ok || received == "" || botToken == "" {
		return false
	}
	computed := ComputeSignature(fields, botToken)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(received)) == 1
}
