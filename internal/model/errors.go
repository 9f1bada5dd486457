package model

import "fmt"

// APIError はAPIが返す業務エラーを表す。
// DetailはそのままレスポンスボディのdetailフィールドとしてUIに表示される。
type APIError struct {
	Code   string // エラーコード
	Detail string // クライアント向けメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Detail)
}

// 定義済みエラーコード
const (
	ErrCodeActivityNotFound = "ACTIVITY_NOT_FOUND"
	ErrCodeAlreadySignedUp  = "ALREADY_SIGNED_UP"
	ErrCodeNotRegistered    = "NOT_REGISTERED"
	ErrCodeEmailRequired    = "EMAIL_REQUIRED"
)

// NewActivityNotFoundError は活動名がディレクトリに存在しない場合のエラーを生成する。
func NewActivityNotFoundError() *APIError {
	return &APIError{
		Code:   ErrCodeActivityNotFound,
		Detail: "Activity not found",
	}
}

// NewAlreadySignedUpError は同一活動への重複申込エラーを生成する。
func NewAlreadySignedUpError() *APIError {
	return &APIError{
		Code:   ErrCodeAlreadySignedUp,
		Detail: "Student already signed up for this activity",
	}
}

// NewNotRegisteredError は未登録の生徒を取り消そうとした場合のエラーを生成する。
func NewNotRegisteredError() *APIError {
	return &APIError{
		Code:   ErrCodeNotRegistered,
		Detail: "Student is not registered for this activity",
	}
}

// NewEmailRequiredError はemailクエリパラメータが欠落している場合のエラーを生成する。
func NewEmailRequiredError() *APIError {
	return &APIError{
		Code:   ErrCodeEmailRequired,
		Detail: "email is required",
	}
}
