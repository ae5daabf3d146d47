package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration
		"Assembling %s into %s (%s, %d fps, %dx%d)": "%s を %s に結合中 (%s, %d fps, %dx%d)",
		"Found %d frames in %s":                     "%d 枚のフレームを %s で検出しました",
		"Skipping directory %s":                     "ディレクトリ %s をスキップします",
		"Video saved as %s":                         "動画を %s に保存しました",
		"Interrupted, shutting down...":             "中断されました。シャットダウン中...",
		"Stage %s finished in %s":                   "ステージ %s が %s で完了しました",

		// Assemble stage
		"Added %s to video":                 "%s を動画に追加しました",
		"Could not read image %s: %s":       "画像 %s を読み込めませんでした: %s",
		"Skipped %d unreadable frames":      "読み込めない %d フレームをスキップしました",
		"Wrote %d frames":                   "%d フレームを書き込みました",
		"Failed to save debug frame %d: %s": "デバッグフレーム %d の保存に失敗しました: %s",
		"Failed to save frame list: %s":     "フレーム一覧の保存に失敗しました: %s",

		// Sinks
		"Using %s backend for codec %s":                "コーデック %[2]s に %[1]s バックエンドを使用します",
		"Starting ffmpeg: %s":                          "ffmpeg を起動中: %s",
		"No frames written, writing empty container":   "フレームがないため空のコンテナを書き込みます",
		"Backend %s not available, falling back to %s": "バックエンド %s は利用できないため %s を使用します",

		// Errors
		"Failed to collect frames: %s": "フレームの収集に失敗しました: %s",
		"Failed to assemble video: %s": "動画の結合に失敗しました: %s",
		"Failed to write summary: %s":  "サマリーの書き込みに失敗しました: %s",
	})
}
