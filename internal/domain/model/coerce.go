package model

import (
	"math"
	"regexp"
	"strconv"
)

// nonNumericPattern 数値として解釈できない文字（数字・小数点・符号以外）
var nonNumericPattern = regexp.MustCompile(`[^0-9.+-]`)

// ToNumber 任意の値を数値に変換する
// 数値型はそのまま、文字列は "12.5km" のような単位付きでも数字部分を取り出して解釈する
// 変換できない場合や有限値でない場合は fallback を返す
func ToNumber(v any, fallback float64) float64 {
	switch n := v.(type) {
	case nil:
		return fallback
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return fallback
		}
		return n
	case float32:
		return ToNumber(float64(n), fallback)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		stripped := nonNumericPattern.ReplaceAllString(n, "")
		parsed, err := strconv.ParseFloat(stripped, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return fallback
		}
		return parsed
	default:
		return fallback
	}
}

// ToString 任意の値を文字列に変換する（文字列以外は fallback）
func ToString(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

// FormatNumber 数値をプロンプトや説明文に埋め込むための文字列に変換する（5.0 → "5"）
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
