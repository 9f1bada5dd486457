// Package webui はバイナリに埋め込んだ静的UIを提供する。
package webui

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Handler は静的UIを配信するhttp.Handlerを返す。
// ルーター側で/static/プレフィックスを取り除いてから委譲すること。
func Handler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// embedディレクトリ名の不一致はビルド時の問題なので即座に落とす
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
