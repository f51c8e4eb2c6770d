package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Converter (debug)
		"Loading image from %s":      "%s から画像を読み込み中",
		"Decoded image: %dx%d":       "画像をデコードしました: %dx%d",
		"Normalized %s source to %v": "%s ソースを %v に正規化しました",

		// Bench (debug)
		"Image updated: %v":                "画像を更新しました: %v",
		"Drew %d markers and %d polylines": "%d 個のマーカーと %d 本の折れ線を描画しました",
		"Skipped %d malformed draw items":  "不正な描画要素 %d 個をスキップしました",
		"Saved debug frame %d":             "デバッグフレーム %d を保存しました",

		// CLI (info)
		"Loaded config from %s":         "%s から設定を読み込みました",
		"Rendering %dx%d surface":       "%dx%d のサーフェスを描画中",
		"Output saved to %s":            "出力を %s に保存しました",
		"Watching %d files for changes": "%d 個のファイルの変更を監視中",
		"Change detected: %s":           "変更を検出しました: %s",

		// Watcher
		"Watching %s":       "%s を監視中",
		"Watcher error: %s": "監視エラー: %s",

		// Warnings
		"Failed to save debug source: %s": "デバッグ用ソース画像の保存に失敗しました: %s",
		"Failed to save debug frame: %s":  "デバッグフレームの保存に失敗しました: %s",

		// Errors
		"Failed to render: %s": "描画に失敗しました: %s",
	})
}
