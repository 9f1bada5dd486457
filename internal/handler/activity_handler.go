// Package handler はHTTP APIのハンドラーとルーティングを提供する。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mergington/activities/internal/model"
)

// DirectoryServiceInterface は活動ハンドラーが必要とするサービスインターフェース。
type DirectoryServiceInterface interface {
	// List は全活動のスナップショットを返す。
	List(ctx context.Context) map[string]model.Activity
	// Signup は活動の参加者リストにメールアドレスを追加する。
	Signup(ctx context.Context, activityName, email string) error
	// Unregister は活動の参加者リストからメールアドレスを取り除く。
	Unregister(ctx context.Context, activityName, email string) error
}

// ActivityHandler は課外活動ディレクトリのHTTPハンドラー。
type ActivityHandler struct {
	service DirectoryServiceInterface
}

// NewActivityHandler はActivityHandlerを生成する。
func NewActivityHandler(service DirectoryServiceInterface) *ActivityHandler {
	return &ActivityHandler{
		service: service,
	}
}

// messageResponse は操作成功時のAPIレスポンス。
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse はAPIエラーレスポンスの統一フォーマット。
type errorResponse struct {
	Detail string `json:"detail"`
}

// ListActivities は全活動の一覧を取得する。
// GET /activities
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities := h.service.List(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(activities)
}

// activityNameParam はURLパスから活動名を取り出す。
// 活動名は空白を含むため、パスセグメントがエスケープされたまま
// 渡ってきた場合はデコードする。
func activityNameParam(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}

// Signup は生徒を活動に申し込む。
// POST /activities/{name}/signup?email=<email>
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	activityName := activityNameParam(r)

	email := r.URL.Query().Get("email")
	if email == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewEmailRequiredError())
		return
	}

	if err := h.service.Signup(r.Context(), activityName, email); err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	})
}

// Unregister は生徒の申込を取り消す。
// DELETE /activities/{name}/unregister?email=<email>
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	activityName := activityNameParam(r)

	email := r.URL.Query().Get("email")
	if email == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewEmailRequiredError())
		return
	}

	if err := h.service.Unregister(r.Context(), activityName, email); err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activityName),
	})
}

// writeAPIErrorResponse は統一エラーフォーマットでHTTPエラーレスポンスを書き込む。
func writeAPIErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errorResponse{
		Detail: apiErr.Detail,
	})
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPステータスコードに変換する。
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		writeAPIErrorResponse(w, mapAPIErrorToHTTPStatus(apiErr), apiErr)
		return
	}

	// APIError以外のエラーは内部サーバーエラーとして扱う
	slog.Error("internal server error", slog.String("error", err.Error()))
	writeAPIErrorResponse(w, http.StatusInternalServerError, &model.APIError{
		Code:   "INTERNAL_ERROR",
		Detail: "Internal server error",
	})
}

// mapAPIErrorToHTTPStatus はAPIErrorコードからHTTPステータスコードにマッピングする。
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeActivityNotFound:
		return http.StatusNotFound
	case model.ErrCodeAlreadySignedUp:
		return http.StatusBadRequest
	case model.ErrCodeNotRegistered:
		return http.StatusBadRequest
	case model.ErrCodeEmailRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
