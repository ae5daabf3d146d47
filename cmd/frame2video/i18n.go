// Package main provides localization for the frame2video CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input":    "入力",
		"Output":   "出力",
		"Resizing": "リサイズ",
		"Backend":  "バックエンド",
		"Debug":    "デバッグ",
		"Logging":  "ログ",

		// Commands
		"Assemble a directory of image frames into an MP4 video": "ディレクトリ内の画像フレームをMP4動画に結合",
		"Write the frames of a directory to an MP4 file":         "ディレクトリ内のフレームをMP4ファイルに書き出す",
		"Show video track information of an MP4 file":            "MP4ファイルの映像トラック情報を表示",
		"Show version information":                               "バージョン情報を表示",
		"frame2video version %s":                                 "frame2video バージョン %s",

		// Input flags
		"YAML configuration file":                    "YAML設定ファイル",
		"Directory containing the frames":            "フレームを含むディレクトリ",
		"File name suffix of frames (default: .png)": "フレームのファイル名サフィックス（デフォルト: .png）",
		"Match the suffix case-insensitively":        "サフィックスの大文字小文字を区別しない",

		// Output flags
		"Output MP4 file path (default: output_video.mp4)":                            "出力MP4ファイルパス（デフォルト: output_video.mp4）",
		"Frames per second (default: 30)":                                             "フレームレート（デフォルト: 30）",
		"Output video width (default: 2160)":                                          "出力動画の幅（デフォルト: 2160）",
		"Output video height (default: 1440)":                                         "出力動画の高さ（デフォルト: 1440）",
		"Codec identifier such as mp4v, avc1, hvc1, av01, vp09, mjpg (default: mp4v)": "コーデック識別子。mp4v, avc1, hvc1, av01, vp09, mjpg など（デフォルト: mp4v）",
		"Codec quality value, 0 uses the encoder default":                             "コーデックの品質値（0 はエンコーダーの既定値）",

		// Resizing flags
		"stretch or letterbox (default: stretch)":                               "stretch または letterbox（デフォルト: stretch）",
		"nearest, approx-bilinear, bilinear or catmull-rom (default: bilinear)": "nearest, approx-bilinear, bilinear, catmull-rom のいずれか（デフォルト: bilinear）",
		"Letterbox color (hex, default: #000000)":                               "レターボックスの色（16進数、デフォルト: #000000）",

		// Backend flags
		"auto, ffmpeg or opencv (default: auto)":                                   "auto, ffmpeg, opencv のいずれか（デフォルト: auto）",
		"Path to the ffmpeg executable (falls back to FFMPEG_PATH env, then PATH)": "ffmpeg実行ファイルのパス（未指定時は FFMPEG_PATH 環境変数、次に PATH）",

		// Debug flags
		"Save resized frames to this directory":                "リサイズ後のフレームをこのディレクトリに保存",
		"Write a Markdown summary to this file (- for stdout)": "Markdown形式のサマリーをこのファイルに出力（- で標準出力）",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Log format (text, json)":              "ログ形式（text, json）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Inspect command
		"inspect requires an MP4 file path": "MP4ファイルのパスが必要です",
		"File: %s":                          "ファイル: %s",
		"Codec: %s":                         "コーデック: %s",
		"Resolution: %dx%d":                 "解像度: %dx%d",
		"Frames: %d":                        "フレーム数: %d",
		"Duration: %d ms":                   "再生時間: %d ms",
		"Fragmented: %t":                    "フラグメント化: %t",
		"File Size: %d bytes":               "ファイルサイズ: %d バイト",

		// Summary content
		"Frame Assembly Summary": "フレーム結合サマリー",
		"Source":                 "入力",
		"Item":                   "項目",
		"Value":                  "値",
		"Source Directory":       "入力ディレクトリ",
		"Frames Found":           "検出フレーム数",
		"Frames Added":           "追加フレーム数",
		"Frames Skipped":         "スキップしたフレーム数",
		"Output File":            "出力ファイル",
		"Codec":                  "コーデック",
		"Frame Rate":             "フレームレート",
		"Resolution":             "解像度",
		"Duration":               "再生時間",
		"File Size":              "ファイルサイズ",
		"Skipped Frames":         "スキップしたフレーム",
		"Generated at":           "生成日時",
	})
}
