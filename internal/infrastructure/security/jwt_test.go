package security

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
)

var testIdentity = domain.Identity{
	AccountID: "65f1c0ffee0000000000abcd",
	Name:      "Alice",
	Email:     "alice@example.com",
}

func newTestCodec(t *testing.T, now time.Time) *JWTCodec {
	t.Helper()
	c, err := NewJWTCodec("test-secret")
	require.NoError(t, err)
	c.now = func() time.Time { return now }
	return c
}

func TestNewJWTCodec_EmptySecret(t *testing.T) {
	_, err := NewJWTCodec("")
	require.Error(t, err)
}

func TestJWTCodec_RoundTrip(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c := newTestCodec(t, now)

	token, err := c.Sign(testIdentity, now.Add(10*24*time.Hour))
	require.NoError(t, err)

	got, err := c.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, got)
}

func TestJWTCodec_VerifyIsIdempotent(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c := newTestCodec(t, now)

	token, err := c.Sign(testIdentity, now.Add(time.Hour))
	require.NoError(t, err)

	first, err := c.Verify(token)
	require.NoError(t, err)
	second, err := c.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestJWTCodec_ExpiryBoundary(t *testing.T) {
	issued := time.Unix(1_700_000_000, 0)
	expiresAt := issued.Add(time.Hour)
	c := newTestCodec(t, issued)

	token, err := c.Sign(testIdentity, expiresAt)
	require.NoError(t, err)

	c.now = func() time.Time { return expiresAt.Add(-time.Second) }
	_, err = c.Verify(token)
	require.NoError(t, err, "one second before expiry must still verify")

	c.now = func() time.Time { return expiresAt }
	_, err = c.Verify(token)
	require.ErrorIs(t, err, domain.ErrUnauthenticated, "a token is expired at its expiry instant")

	c.now = func() time.Time { return expiresAt.Add(time.Second) }
	_, err = c.Verify(token)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestJWTCodec_LongExpiredTokenRejected(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c := newTestCodec(t, now)

	token, err := c.Sign(testIdentity, now.Add(-11*24*time.Hour))
	require.NoError(t, err)

	_, err = c.Verify(token)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestJWTCodec_BitFlipRejected(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c := newTestCodec(t, now)

	token, err := c.Sign(testIdentity, now.Add(time.Hour))
	require.NoError(t, err)

	raw := []byte(token)
	for i := range raw {
		for bit := 0; bit < 8; bit++ {
			tampered := make([]byte, len(raw))
			copy(tampered, raw)
			tampered[i] ^= 1 << bit

			_, err := c.Verify(string(tampered))
			if !errors.Is(err, domain.ErrUnauthenticated) {
				t.Fatalf("flipping bit %d of byte %d was accepted", bit, i)
			}
		}
	}
}

func TestJWTCodec_WrongSecretRejected(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	signer := newTestCodec(t, now)
	token, err := signer.Sign(testIdentity, now.Add(time.Hour))
	require.NoError(t, err)

	other, err := NewJWTCodec("another-secret")
	require.NoError(t, err)
	other.now = signer.now

	_, err = other.Verify(token)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestJWTCodec_RejectsOtherAlgorithms(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c := newTestCodec(t, now)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   testIdentity.AccountID,
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = c.Verify(unsigned)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestJWTCodec_RequiresExpiry(t *testing.T) {
	c := newTestCodec(t, time.Unix(1_700_000_000, 0))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: testIdentity.AccountID,
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = c.Verify(token)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestJWTCodec_Garbage(t *testing.T) {
	c := newTestCodec(t, time.Now())

	for _, raw := range []string{"", "garbage", strings.Repeat("a.", 3)} {
		_, err := c.Verify(raw)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated, "input %q", raw)
	}
}
