package telegram

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11"

func signedFields(t *testing.T) map[string]string {
	t.Helper()
	fields := map[string]string{
		"id":         "987654321",
		"first_name": "Ivan",
		"username":   "ivan_fit",
		"auth_date":  "1700000000",
	}
	fields["hash"] = ComputeSignature(fields, testBotToken)
	return fields
}

func TestComputeSignatureKnownAnswer(t *testing.T) {
	fields := map[string]string{
		"id":         "987654321",
		"first_name": "Ivan",
		"username":   "ivan_fit",
		"auth_date":  "1700000000",
	}
	sig := ComputeSignature(fields, testBotToken)
	assert.Equal(t, "af33443924f63fa63fa8bb1e460ffc8e9494a824f980901da7e4683d7776874d", sig)
}

func TestVerifySignatureValid(t *testing.T) {
	assert.True(t, VerifySignature(signedFields(t), testBotToken))
}

func TestVerifySignatureFieldFlip(t *testing.T) {
	fields := signedFields(t)
	fields["id"] = "111111111"
	assert.False(t, VerifySignature(fields, testBotToken))
}

func TestVerifySignatureWrongToken(t *testing.T) {
	assert.False(t, VerifySignature(signedFields(t), "999999:other-token"))
}

func TestVerifySignatureMissingHash(t *testing.T) {
	fields := signedFields(t)
	delete(fields, "hash")
	assert.False(t, VerifySignature(fields, testBotToken))
}

func TestComputeSignatureExcludesHash(t *testing.T) {
	fields := signedFields(t)
	withHash := ComputeSignature(fields, testBotToken)
	delete(fields, "hash")
	withoutHash := ComputeSignature(fields, testBotToken)
	assert.Equal(t, withoutHash, withHash)
}

func TestParseLoginExplicitTypes(t *testing.T) {
	login, err := ParseLogin(map[string]string{"auth_type": "mock", "id": "5"}, "")
	require.NoError(t, err)
	assert.Equal(t, "mock", login.AuthType())

	login, err = ParseLogin(map[string]string{
		"auth_type": "webapp", "id": "5", "hash": "deadbeef",
	}, testBotToken)
	require.NoError(t, err)
	assert.Equal(t, "webapp", login.AuthType())

	login, err = ParseLogin(map[string]string{
		"auth_type": "oauth", "id": "5", "auth_date": "1700000000",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "oauth", login.AuthType())

	_, err = ParseLogin(map[string]string{"auth_type": "saml"}, "")
	assert.ErrorIs(t, err, ErrUnknownAuthType)
}

func TestParseLoginAutoDetect(t *testing.T) {
	// Valid signature classifies as webapp.
	login, err := ParseLogin(signedFields(t), testBotToken)
	require.NoError(t, err)
	assert.Equal(t, "webapp", login.AuthType())

	// Broken signature downgrades to the legacy oauth path.
	broken := signedFields(t)
	broken["hash"] = "0000"
	login, err = ParseLogin(broken, testBotToken)
	require.NoError(t, err)
	assert.Equal(t, "oauth", login.AuthType())

	// No hash field means mock.
	login, err = ParseLogin(map[string]string{"id": "5"}, testBotToken)
	require.NoError(t, err)
	assert.Equal(t, "mock", login.AuthType())

	// Hash present but no bot token configured also means mock.
	login, err = ParseLogin(signedFields(t), "")
	require.NoError(t, err)
	assert.Equal(t, "mock", login.AuthType())
}

func TestParseMockDefaults(t *testing.T) {
	login, err := ParseLogin(map[string]string{"auth_type": "mock"}, "")
	require.NoError(t, err)

	profile := login.Profile()
	assert.Equal(t, int64(123456789), profile.TelegramID)
	assert.Equal(t, "Test", profile.FirstName)
	assert.Equal(t, "user_123456789", profile.Username)
}

func TestParseMockIdempotent(t *testing.T) {
	first, err := ParseLogin(map[string]string{"auth_type": "mock", "id": "777"}, "")
	require.NoError(t, err)
	second, err := ParseLogin(map[string]string{"auth_type": "mock", "id": "777"}, "")
	require.NoError(t, err)
	assert.Equal(t, first.Profile(), second.Profile())
}

func TestParseOAuthMissingFields(t *testing.T) {
	_, err := ParseLogin(map[string]string{"auth_type": "oauth", "auth_date": "1700000000"}, "")
	assert.ErrorIs(t, err, ErrMissingID)

	_, err = ParseLogin(map[string]string{"auth_type": "oauth", "id": "5"}, "")
	assert.ErrorIs(t, err, ErrMissingAuthDate)
}

func TestFlattenPayloadPreservesNumberForm(t *testing.T) {
	raw := `{"id": 987654321, "auth_date": 1700000000, "first_name": "Ivan", "allows_write_to_pm": true}`
	var payload map[string]interface{}
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()
	require.NoError(t, decoder.Decode(&payload))

	fields := FlattenPayload(payload)
	assert.Equal(t, "987654321", fields["id"])
	assert.Equal(t, "1700000000", fields["auth_date"])
	assert.Equal(t, "true", fields["allows_write_to_pm"])
}
