package repository

import (
	"context"
	"encoding/json"

	"RunCourse-App/internal/domain/model"
)

// DirectionsProvider 外部経路検索サービスのインターフェース
type DirectionsProvider interface {
	// GetRecommendedPath 出発地から目的地までの推奨経路をデコード済みのパスとして取得する
	GetRecommendedPath(ctx context.Context, origin, destination model.LatLng) ([]model.PathPoint, error)

	// GetRawDirections "経度,緯度" 形式の文字列ペアで経路を検索し、上流のレスポンスをそのまま返す
	GetRawDirections(ctx context.Context, origin, destination string) (json.RawMessage, error)
}
