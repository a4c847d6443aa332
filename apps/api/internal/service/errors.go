package service

import (
	"errors"
	"fmt"

	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/consts"
)

// ==================== Service 层统一错误定义 ====================

// BizError 携带业务错误码的错误。
// handler 层通过 CodeOf 取出错误码交给 result 包映射 HTTP 状态。
type BizError struct {
	Code  int32
	cause error
}

// NewBizError 根据错误码创建业务错误
func NewBizError(code int32) *BizError {
	return &BizError{Code: code}
}

// WrapBizError 根据错误码包装底层错误
func WrapBizError(code int32, cause error) *BizError {
	return &BizError{Code: code, cause: cause}
}

func (e *BizError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", consts.GetMessage(e.Code), e.cause)
	}
	return consts.GetMessage(e.Code)
}

func (e *BizError) Unwrap() error {
	return e.cause
}

// CodeOf 取出错误携带的业务码，非业务错误按内部错误处理
func CodeOf(err error) int32 {
	if err == nil {
		return consts.CodeSuccess
	}
	var biz *BizError
	if errors.As(err, &biz) {
		return biz.Code
	}
	return consts.CodeInternalError
}

// mapRepoError 把仓储哨兵错误翻译成业务错误。
// notFoundCode/duplicateCode: 对应场景的业务码；其余一律内部错误。
func mapRepoError(err error, notFoundCode, duplicateCode int32) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrRecordNotFound):
		return NewBizError(notFoundCode)
	case errors.Is(err, repository.ErrDuplicateKey):
		return NewBizError(duplicateCode)
	default:
		return WrapBizError(consts.CodeInternalError, err)
	}
}
