// Package main provides localization for the imgbench CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input":   "入力",
		"Output":  "出力",
		"Surface": "サーフェス",
		"Drawing": "描画",
		"Debug":   "デバッグ",
		"Logging": "ログ",

		// Root command
		"Draw points and polylines over an image": "画像の上に点と折れ線を描画",

		// Commands
		"Render an image with markers and polylines to a file":   "マーカーと折れ線を重ねた画像をファイルに出力",
		"Show the canonical and surface shapes of an image file": "画像ファイルの正規形とサーフェス形状を表示",
		"Show version information":                               "バージョン情報を表示",
		"imgbench version %s":                                    "imgbench バージョン %s",

		// Render flags
		"Configuration file (.yaml or .toml)":             "設定ファイル（.yaml または .toml）",
		"Re-render when the config or image file changes": "設定ファイルまたは画像の変更時に再描画",
		"Image file to draw under the points":             "点の下に描画する画像ファイル",
		"Output image path (.png or .jpg)":                "出力画像のパス（.png または .jpg）",
		"JPEG quality (1-100)":                            "JPEG品質（1-100）",
		"Surface width (default: image width)":            "サーフェスの幅（デフォルト: 画像の幅）",
		"Surface height (default: image height)":          "サーフェスの高さ（デフォルト: 画像の高さ）",
		"Stroke color (hex, e.g., #64aafaaa)":             "線の色（16進数、例: #64aafaaa）",
		"Marker position x,y (repeatable)":                "マーカー位置 x,y（複数指定可）",
		"Polyline x1,y1;x2,y2;... (repeatable)":           "折れ線 x1,y1;x2,y2;...（複数指定可）",
		"Enable debug output":                             "デバッグ出力を有効化",
		"Directory for debug output":                      "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Convert output
		"Canonical shape: %v": "正規形の形状: %v",
		"Surface shape: %v":   "サーフェス形状: %v",

		// Errors
		"Exactly one image argument is required": "画像引数を1つだけ指定してください",
	})
}
