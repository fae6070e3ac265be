package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"RunCourse-App/internal/domain/model"
	"RunCourse-App/internal/domain/repository"
)

// KakaoDirectionsProvider Kakao Mobility APIを使用した経路検索の実装
type KakaoDirectionsProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewKakaoDirectionsProvider 新しいプロバイダを生成する
func NewKakaoDirectionsProvider(apiKey string) *KakaoDirectionsProvider {
	return &KakaoDirectionsProvider{
		apiKey:     apiKey,
		baseURL:    "https://apis-navi.kakaomobility.com/v1/directions",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

var _ repository.DirectionsProvider = (*KakaoDirectionsProvider)(nil)

// GetRecommendedPath 出発地から目的地までの推奨経路を取得し、
// 各道路セクションの頂点列を順序を保ったままパスにデコードする
func (k *KakaoDirectionsProvider) GetRecommendedPath(ctx context.Context, origin, destination model.LatLng) ([]model.PathPoint, error) {
	params := url.Values{}
	// Kakao APIの座標は「経度,緯度」の順
	params.Set("origin", fmt.Sprintf("%f,%f", origin.Lng, origin.Lat))
	params.Set("destination", fmt.Sprintf("%f,%f", destination.Lng, destination.Lat))
	params.Set("priority", "RECOMMEND")

	body, err := k.doRequest(ctx, params)
	if err != nil {
		return nil, err
	}

	var apiResp kakaoDirectionsResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	if len(apiResp.Routes) == 0 {
		return nil, errors.New("APIから有効なルートが返されませんでした")
	}

	return decodeRoutePath(apiResp.Routes[0]), nil
}

// GetRawDirections "経度,緯度" 形式の文字列ペアで経路を検索し、上流のレスポンスをそのまま返す
func (k *KakaoDirectionsProvider) GetRawDirections(ctx context.Context, origin, destination string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("priority", "RECOMMEND")
	params.Set("road_details", "true")

	return k.doRequest(ctx, params)
}

// doRequest 認証ヘッダー付きでAPIを呼び出してレスポンスボディを返す
func (k *KakaoDirectionsProvider) doRequest(ctx context.Context, params url.Values) (json.RawMessage, error) {
	reqURL := fmt.Sprintf("%s?%s", k.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+k.apiKey)

	resp, err := k.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("レスポンスの読み取りに失敗: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("APIからエラーステータスが返されました (status: %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// decodeRoutePath ルート内の全セクション・全道路の頂点列を連結してパスに変換する
// vertexesは経度・緯度が交互に並んだフラットな配列
func decodeRoutePath(route kakaoRoute) []model.PathPoint {
	path := make([]model.PathPoint, 0)
	for _, section := range route.Sections {
		for _, road := range section.Roads {
			for i := 0; i+1 < len(road.Vertexes); i += 2 {
				path = append(path, model.PathPoint{
					Lat: road.Vertexes[i+1],
					Lng: road.Vertexes[i],
				})
			}
		}
	}
	return path
}

// --- Kakao Mobility APIのレスポンスをパースするための構造体 ---

type kakaoDirectionsResponse struct {
	Routes []kakaoRoute `json:"routes"`
}

type kakaoRoute struct {
	Sections []kakaoSection `json:"sections"`
}

type kakaoSection struct {
	Roads []kakaoRoad `json:"roads"`
}

type kakaoRoad struct {
	Vertexes []float64 `json:"vertexes"`
}
