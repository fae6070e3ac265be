package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// jsonSpanPattern 最初の '{' から最後の '}' までの貪欲マッチ
var jsonSpanPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSONObject 生成テキストから最初の '{' から最後の '}' までを切り出して
// JSONオブジェクトとしてパースする
// 貪欲マッチのため、JSON本体の後ろに波括弧を含む文章が続くと壊れる既知の弱点がある
// （バランスパーサーではない）。失敗時はpanicせずエラーを返す
func ExtractJSONObject(text string) (map[string]any, error) {
	span := jsonSpanPattern.FindString(text)
	if span == "" {
		return nil, errors.New("JSONオブジェクトが見つかりませんでした")
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(span), &obj); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}
	return obj, nil
}
