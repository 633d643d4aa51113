package utils

import (
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestNewShareToken_UniqueHex(t *testing.T) {
    a, err := NewShareToken()
    require.NoError(t, err)
    b, err := NewShareToken()
    require.NoError(t, err)

    assert.Len(t, a, 2*shareTokenBytes)
    assert.Regexp(t, "^[0-9a-f]+$", a)
    assert.NotEqual(t, a, b)
}

func TestNewAccessToken_Claims(t *testing.T) {
    tok, err := NewAccessToken("secret", "user-1", "manager", time.Hour)
    require.NoError(t, err)

    parsed, err := jwt.Parse(tok.Token, func(*jwt.Token) (interface{}, error) { return []byte("secret"), nil })
    require.NoError(t, err)
    claims := parsed.Claims.(jwt.MapClaims)
    assert.Equal(t, "user-1", claims["sub"])
    assert.Equal(t, "manager", claims["role"])
    assert.WithinDuration(t, time.Now().Add(time.Hour), tok.Exp, time.Minute)
}
