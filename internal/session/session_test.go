package session

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenspace/zenspace/internal/api"
)

func TestFromUserDerivesFirstName(t *testing.T) {
	s := FromUser(api.User{ID: "u1", Name: "Ada Lovelace", Email: "ada@uni.edu"})
	assert.Equal(t, "Ada", s.FirstName)
	assert.Equal(t, "u1", s.UserID)
}

func TestFromUserKeepsServerFirstName(t *testing.T) {
	s := FromUser(api.User{Name: "Ada Lovelace", Email: "a@b.c", FirstName: "Addy"})
	assert.Equal(t, "Addy", s.FirstName)
}

func TestParseRoundTrip(t *testing.T) {
	orig := Session{UserID: "u1", Name: "Ada Lovelace", Email: "ada@uni.edu", FirstName: "Ada"}
	got, err := Parse(orig.Encode())
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestParseAcceptsLegacyUserIDField(t *testing.T) {
	got, err := Parse(`{"userId":"u9","name":"Ada Lovelace","email":"ada@uni.edu"}`)
	require.NoError(t, err)
	assert.Equal(t, "u9", got.UserID)
	assert.Equal(t, "Ada", got.FirstName)
}

func TestParseRejectsGarbage(t *testing.T) {
	cases := []string{
		"not json at all",
		`{"name":"Ada"}`,
		`{"name":123,"email":"a@b.c"}`,
		`[]`,
	}
	for _, raw := range cases {
		_, err := Parse(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestDecodeAuthPayload(t *testing.T) {
	payload := `{"user":{"_id":"u1","name":"Ada Lovelace","email":"ada@uni.edu"},"tokens":{"access_token":"a","refresh_token":"r"}}`

	for name, enc := range map[string]string{
		"unpadded": base64.RawURLEncoding.EncodeToString([]byte(payload)),
		"padded":   base64.URLEncoding.EncodeToString([]byte(payload)),
	} {
		t.Run(name, func(t *testing.T) {
			res, err := DecodeAuthPayload(enc)
			require.NoError(t, err)
			assert.Equal(t, "Ada Lovelace", res.User.Name)
			assert.Equal(t, "a", res.Tokens.AccessToken)
		})
	}
}

func TestDecodeAuthPayloadRejectsBadInput(t *testing.T) {
	_, err := DecodeAuthPayload("%%%not-base64%%%")
	assert.Error(t, err)

	missingTokens := base64.RawURLEncoding.EncodeToString(
		[]byte(`{"user":{"name":"Ada","email":"a@b.c"}}`))
	_, err = DecodeAuthPayload(missingTokens)
	assert.Error(t, err)
}

func TestPeekToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := PeekToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.True(t, claims.ExpiresAt.Equal(exp))
	assert.False(t, claims.Expired(time.Now()))
	assert.True(t, claims.Expired(exp.Add(time.Minute)))
}

func TestPeekTokenNoExpiryNeverExpires(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := PeekToken(signed)
	require.NoError(t, err)
	assert.False(t, claims.Expired(time.Now().Add(100*365*24*time.Hour)))
}

func TestPeekTokenRejectsOpaqueString(t *testing.T) {
	_, err := PeekToken("definitely-not-a-jwt")
	assert.Error(t, err)
}
