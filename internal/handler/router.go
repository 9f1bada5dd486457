package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mergington/activities/internal/metrics"
	"github.com/mergington/activities/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ドメインサービス
	Directory DirectoryServiceInterface

	// ミドルウェア依存
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	Logger            *slog.Logger

	// メトリクス
	HTTPMetrics     middleware.HTTPMetricsRecorder
	MetricsGatherer prometheus.Gatherer

	// 静的UI
	Static http.Handler
}

// NewRouter は全エンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → SecurityHeaders → CORS → RequestID → Logging → Metrics
//
// レート制限は/activities配下にのみ適用する（申込・取消には専用の制限を追加）。
// 運用系ルート（/health、/metrics）と静的UIはレート制限の対象外。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewRequestIDMiddleware())
	r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	if deps.HTTPMetrics != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.HTTPMetrics))
	}

	activityHandler := NewActivityHandler(deps.Directory)

	// --- 運用系ルート ---

	r.Get("/health", Health)
	if deps.MetricsGatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.MetricsGatherer))
	}

	// --- 静的UI ---

	// ルートは静的なインデックスページへリダイレクトする
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})
	if deps.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", deps.Static))
	}

	// --- 活動API ---

	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.GeneralMiddleware())

		r.Route("/activities", func(r chi.Router) {
			r.Get("/", activityHandler.ListActivities)

			r.Route("/{name}", func(r chi.Router) {
				// 申込・取消には専用のレート制限を追加
				r.With(deps.RateLimiter.MutationMiddleware()).Post("/signup", activityHandler.Signup)
				r.With(deps.RateLimiter.MutationMiddleware()).Delete("/unregister", activityHandler.Unregister)
			})
		})
	})

	return r
}
