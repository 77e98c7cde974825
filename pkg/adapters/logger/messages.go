package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Job level messages (info)
		"Rendering %s onto %s (%dx%d)...": "%s を %s に描画中 (%dx%d)...",
		"Output saved to %s":              "出力を %s に保存しました",
		"Render completed successfully":   "描画が正常に完了しました",
		"Summary saved to %s":             "サマリーを %s に保存しました",
		"Loading image %s":                "画像 %s を読み込み中",
		"Image decoded: %dx%d":            "画像をデコードしました: %dx%d",

		// Compose stage
		"No image loaded, nothing to draw":              "画像が読み込まれていないため描画しません",
		"Image %dx%d drawn at %.1f,%.1f size %.1fx%.1f": "画像 %dx%d を %.1f,%.1f にサイズ %.1fx%.1f で描画しました",
		"Text fill: %s":                                 "文字色: %s",
		"Font %dpx, %d lines":                           "フォント %dpx、%d 行",
		"Text does not fit the text zone, using %dpx":   "テキストが領域に収まりません。%dpx を使用します",
		"Pan offset clamped to %.1f,%.1f":               "パン位置を %.1f,%.1f に制限しました",

		// Font resolver
		"Font %s %d not found, using fallback sans-serif": "フォント %s %d が見つからないため代替サンセリフを使用します",
		"Loaded font %s":                                  "フォント %s を読み込みました",

		// Config
		"%s out of range, clamped to %v":    "%s が範囲外のため %v に補正しました",
		"Unknown frame preset %q, using %s": "不明なフレームプリセット %q、%s を使用します",

		// Errors
		"Failed to read image: %s":   "画像の読み込みに失敗しました: %s",
		"Failed to decode image: %s": "画像のデコードに失敗しました: %s",
		"Failed to render: %s":       "描画に失敗しました: %s",
		"Failed to encode image: %s": "画像のエンコードに失敗しました: %s",
		"Failed to write output: %s": "出力の書き込みに失敗しました: %s",
	})
}
