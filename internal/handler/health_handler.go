package handler

import (
	"encoding/json"
	"net/http"
)

// healthResponse はヘルスチェックのAPIレスポンス。
type healthResponse struct {
	Status string `json:"status"`
}

// Health は稼働確認用のハンドラー。
// ディレクトリはプロセス内メモリ上にあるため、依存先の死活確認は存在しない。
// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(healthResponse{Status: "ok"})
}
