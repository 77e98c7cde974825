// Package main provides localization for the captionframe CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input and Output": "入出力",
		"Frame":            "フレーム",
		"Font":             "フォント",
		"Layout":           "レイアウト",
		"Color":            "色",
		"Debug":            "デバッグ",
		"Logging":          "ログ",

		// Commands
		"Overlay fitted captions on photos for social media":        "写真にサイズ調整したキャプションを重ねてSNS用画像を作成",
		"Render a caption over a photo and save it as PNG":          "写真にキャプションを描画してPNGとして保存",
		"List the font families and whether their files were found": "フォントファミリーとファイルの有無を表示",
		"List the frame presets":                                    "フレームプリセットの一覧を表示",

		// Input/Output flags
		"YAML configuration file":                      "YAML設定ファイル",
		"Output PNG path (default: ig_<preset>.png)":   "出力PNGのパス（デフォルト: ig_<preset>.png）",
		"Caption text; \\n starts a new line":          "キャプション文字列（\\n で改行）",
		"Read the caption from a file":                 "キャプションをファイルから読み込む",
		"Write a Markdown render summary to this path": "描画サマリーをMarkdownで書き出すパス",

		// Frame flags
		"Frame preset (portrait, square, story)": "フレームプリセット（portrait, square, story）",
		"Drag the photo by dx,dy pixels":         "写真を dx,dy ピクセル移動",

		// Font flags
		"Directory containing font files":                  "フォントファイルのディレクトリ",
		"Font family (Montserrat, Inter, Poppins, Roboto)": "フォントファミリー（Montserrat, Inter, Poppins, Roboto）",
		"Font weight (300-900)":                            "フォントの太さ（300-900）",

		// Layout flags
		"Line height multiplier (1.0-1.6)":                      "行の高さの倍率（1.0-1.6）",
		"Margin in pixels (16-120)":                             "余白（ピクセル、16-120）",
		"Vertical position, 0 = top, 1 = bottom":                "縦位置（0 = 上、1 = 下）",
		"Text zone height as a fraction of the frame (0.3-0.6)": "テキスト領域の高さ（フレームに対する割合、0.3-0.6）",
		"Largest font size in pixels (40-280)":                  "最大フォントサイズ（ピクセル、40-280）",

		// Color flags
		"Pick black or white text from the photo (use --auto-contrast=false to disable)": "写真の明るさから黒か白の文字色を選ぶ（--auto-contrast=false で無効）",
		"Text color when auto contrast is off (hex, e.g., #ffffff)":                      "自動コントラスト無効時の文字色（16進数、例: #ffffff）",
		"Outline the text (use --stroke=false to disable)":                               "文字に縁取りを付ける（--stroke=false で無効）",

		// Debug flags
		"Enable debug output":        "デバッグ出力を有効化",
		"Directory for debug output": "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Runtime messages
		"found":                         "あり",
		"fallback":                      "代替フォント",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",

		// Summary
		"Render Summary":    "描画サマリー",
		"Source":            "元画像",
		"Image":             "画像",
		"Size":              "サイズ",
		"Preset":            "プリセット",
		"Pan Offset":        "パン位置",
		"Text":              "テキスト",
		"Font Size":         "フォントサイズ",
		"does not fit":      "収まりません",
		"Lines":             "行数",
		"Text Color":        "文字色",
		"Stroke":            "縁取り",
		"Margin":            "余白",
		"Line Height":       "行の高さ",
		"Vertical Position": "縦位置",
		"Max Text Area":     "最大テキスト領域",
		"Max Font Size":     "最大フォントサイズ",
		"Output":            "出力",
		"File":              "ファイル",
		"File Size":         "ファイルサイズ",
		"Render Time":       "描画時間",
		"Generated at":      "生成日時",
		"Item":              "項目",
		"Value":             "値",
		"Yes":               "はい",
		"No":                "いいえ",
	})
}
