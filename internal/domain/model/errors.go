package model

import "errors"

// ErrGenerationNotConfigured OpenAI APIキーが未設定でコース生成が利用できない
var ErrGenerationNotConfigured = errors.New("OpenAI APIキーが設定されていません")

// ErrRoutingNotConfigured Kakao REST APIキーが未設定で経路検索が利用できない
var ErrRoutingNotConfigured = errors.New("KAKAO_REST_API_KEYが設定されていません")
