package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/rkeng/billing-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testEmail  = "owner@example.com"
	testIssuer = "billing-api-test"
	testExpMin = 60
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, email, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testEmail, email)
}

func TestParse_ExpiredToken(t *testing.T) {
	// Expiration of -1 minute: already expired at parse time
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "expired token must be rejected")
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("a-completely-different-secret", tok)
	assert.Error(t, err, "wrong secret must invalidate the token")
}

func TestParse_EmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testEmail, testIssuer, testExpMin)
	assert.Error(t, err)
}

func TestParse_MalformedToken(t *testing.T) {
	_, _, err := pkgjwt.Parse(testSecret, "not.a.token")
	assert.Error(t, err)
}

func TestResetToken_NotAcceptedAsSession(t *testing.T) {
	tok, err := pkgjwt.GenerateReset(testSecret, testUserID, testEmail, testIssuer, 15)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "reset token must not authenticate API requests")

	userID, email, err := pkgjwt.ParseReset(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testEmail, email)
}

func TestSessionToken_NotAcceptedForReset(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.ParseReset(testSecret, tok)
	assert.Error(t, err, "session token must not reset passwords")
}
