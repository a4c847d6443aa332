package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"WeddingServer/config"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer 签发和校验本服务的访问令牌（HS256）。
// sub 存十进制的用户 id，与历史客户端持有的旧令牌格式保持一致。
type TokenIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	skew   time.Duration
}

// Claims 访问令牌的声明，只用注册声明就够了
type Claims struct {
	jwt.RegisteredClaims
}

// NewTokenIssuer 创建令牌签发器
func NewTokenIssuer(cfg config.AuthConfig) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
		ttl:    cfg.AccessTTL,
		skew:   cfg.ClockSkew,
	}
}

// Issue 为指定用户签发访问令牌
func (t *TokenIssuer) Issue(userId int64) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userId, 10),
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// TTL 返回令牌有效期（构造响应里的 expires_in 用）
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Parse 解析并校验令牌，返回其中的用户 id。
// 只接受 HMAC 签名，防止算法替换攻击。
func (t *TokenIssuer) Parse(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithLeeway(t.skew))
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token claims")
	}

	userId, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subject %q: %w", claims.Subject, err)
	}
	return userId, nil
}
