package auth

import (
	"context"

	"WeddingServer/consts"
	"WeddingServer/pkg/firebase"
	"WeddingServer/pkg/logger"
)

// IdentityKind 凭证来源
type IdentityKind string

const (
	KindFirebase IdentityKind = "firebase" // Firebase ID Token
	KindLegacy   IdentityKind = "legacy"   // 本服务签发的 JWT
)

// Identity 凭证校验通过后得到的身份。
// Firebase 凭证给出手机号 + UID；历史 JWT 只给出用户 id。
type Identity struct {
	Kind        IdentityKind
	Phone       string // E.164 手机号（仅 firebase）
	FirebaseUid string // Firebase UID（仅 firebase）
	UserId      int64  // 用户 id（仅 legacy）
}

// Outcome 单个校验器的结论。
// 三态而不是布尔：TryNext 让链路落到下一个校验器，
// Reject 则立即终止，凭证格式对了但内容不行不允许降级绕过。
type Outcome int

const (
	OutcomeOK      Outcome = iota // 校验通过
	OutcomeTryNext                // 不是本校验器的凭证，交给下一个
	OutcomeReject                 // 凭证被明确拒绝，终止链路
)

// Verifier 单个凭证校验器。
// code 仅在 Reject 时有意义；err 是底层原因，只用于日志。
type Verifier interface {
	Verify(ctx context.Context, token string) (ident *Identity, outcome Outcome, code int32, err error)
}

// ==================== Firebase 校验器 ====================

// FirebaseVerifier 校验 Firebase ID Token。
// 校验失败返回 TryNext：该 token 可能是历史 JWT，让链路继续。
// 校验成功但缺少手机号声明返回 Reject：这是配置错误，不能当历史 JWT 处理。
type FirebaseVerifier struct {
	client firebase.TokenVerifier
}

// NewFirebaseVerifier 创建 Firebase 校验器
func NewFirebaseVerifier(client firebase.TokenVerifier) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*Identity, Outcome, int32, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, OutcomeTryNext, 0, err
	}

	phone, _ := decoded.Claims["phone_number"].(string)
	if phone == "" {
		logger.Warn(ctx, "Firebase 凭证缺少手机号声明",
			logger.String("uid", decoded.UID),
		)
		return nil, OutcomeReject, consts.CodeMissingPhoneClaim, nil
	}

	return &Identity{
		Kind:        KindFirebase,
		Phone:       phone,
		FirebaseUid: decoded.UID,
	}, OutcomeOK, 0, nil
}

// ==================== 历史 JWT 校验器 ====================

// LegacyVerifier 校验本服务签发的 JWT。
// 链路的最后一环，失败即 Reject。
type LegacyVerifier struct {
	issuer *TokenIssuer
}

// NewLegacyVerifier 创建历史 JWT 校验器
func NewLegacyVerifier(issuer *TokenIssuer) *LegacyVerifier {
	return &LegacyVerifier{issuer: issuer}
}

func (v *LegacyVerifier) Verify(_ context.Context, token string) (*Identity, Outcome, int32, error) {
	userId, err := v.issuer.Parse(token)
	if err != nil {
		return nil, OutcomeReject, consts.CodeInvalidCredential, err
	}
	return &Identity{
		Kind:   KindLegacy,
		UserId: userId,
	}, OutcomeOK, 0, nil
}

// ==================== 校验链 ====================

// Chain 按顺序执行校验器：Firebase 优先，历史 JWT 兜底。
type Chain struct {
	verifiers []Verifier
}

// NewChain 创建校验链
func NewChain(verifiers ...Verifier) *Chain {
	return &Chain{verifiers: verifiers}
}

// Verify 依次尝试每个校验器。
// 所有校验器都 TryNext 时按凭证无效拒绝。
func (c *Chain) Verify(ctx context.Context, token string) (*Identity, int32) {
	for _, v := range c.verifiers {
		ident, outcome, code, err := v.Verify(ctx, token)
		switch outcome {
		case OutcomeOK:
			return ident, consts.CodeSuccess
		case OutcomeReject:
			if err != nil {
				logger.Debug(ctx, "凭证被拒绝", logger.ErrorField(err))
			}
			return nil, code
		case OutcomeTryNext:
			continue
		}
	}
	return nil, consts.CodeInvalidCredential
}
