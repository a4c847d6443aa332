package auth

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"WeddingServer/config"
	"WeddingServer/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var tokenLoggerOnce sync.Once

func initTokenTestLogger() {
	tokenLoggerOnce.Do(func() {
		logger.ReplaceGlobal(zap.NewNop())
	})
}

func testAuthConfig() config.AuthConfig {
	cfg := config.DefaultAuthConfig()
	cfg.JWTSecret = "unit-test-secret"
	cfg.AccessTTL = time.Hour
	cfg.ClockSkew = 0
	return cfg
}

func TestTokenIssuer_IssueAndParse(t *testing.T) {
	initTokenTestLogger()
	issuer := NewTokenIssuer(testAuthConfig())

	signed, err := issuer.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userId, err := issuer.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userId)
}

func TestTokenIssuer_Parse_Expired(t *testing.T) {
	initTokenTestLogger()
	cfg := testAuthConfig()
	cfg.AccessTTL = -time.Minute // 签出来就过期
	issuer := NewTokenIssuer(cfg)

	signed, err := issuer.Issue(7)
	require.NoError(t, err)

	_, err = issuer.Parse(signed)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenIssuer_Parse_WrongSecret(t *testing.T) {
	initTokenTestLogger()
	issuer := NewTokenIssuer(testAuthConfig())

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "another-secret"
	other := NewTokenIssuer(otherCfg)

	signed, err := other.Issue(7)
	require.NoError(t, err)

	_, err = issuer.Parse(signed)
	require.Error(t, err)
}

func TestTokenIssuer_Parse_RejectsNonHMAC(t *testing.T) {
	initTokenTestLogger()
	issuer := NewTokenIssuer(testAuthConfig())

	// alg=none 的令牌必须被拒绝，不允许算法替换
	claims := jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Parse(signed)
	require.Error(t, err)
}

func TestTokenIssuer_Parse_BadSubject(t *testing.T) {
	initTokenTestLogger()
	cfg := testAuthConfig()
	issuer := NewTokenIssuer(cfg)

	claims := jwt.RegisteredClaims{
		Subject:   "not-a-number",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	_, err = issuer.Parse(signed)
	require.Error(t, err)
}

func TestTokenIssuer_TTL(t *testing.T) {
	cfg := testAuthConfig()
	cfg.AccessTTL = 12 * time.Hour
	issuer := NewTokenIssuer(cfg)
	assert.Equal(t, 12*time.Hour, issuer.TTL())
}

func TestTokenIssuer_SubjectIsDecimalUserId(t *testing.T) {
	initTokenTestLogger()
	cfg := testAuthConfig()
	issuer := NewTokenIssuer(cfg)

	signed, err := issuer.Issue(9007199254740993)
	require.NoError(t, err)

	// 历史客户端按十进制字符串读 sub，这里锁住格式
	parsed, err := jwt.ParseWithClaims(signed, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(*Claims)
	assert.Equal(t, strconv.FormatInt(9007199254740993, 10), claims.Subject)
}
