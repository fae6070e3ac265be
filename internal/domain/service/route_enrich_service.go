package service

import (
	"context"
	"errors"
	"log"

	"RunCourse-App/internal/domain/helper"
	"RunCourse-App/internal/domain/model"
	"RunCourse-App/internal/domain/repository"
)

// RouteEnrichService コース候補の先頭・末尾ウェイポイント間に実道路経路を重ねるサービス
// 新しいパスを返すだけで候補自体には手を触れない。失敗の扱いは呼び出し側が決める
type RouteEnrichService struct {
	provider repository.DirectionsProvider
}

// NewRouteEnrichService 新しいRouteEnrichServiceインスタンスを作成
func NewRouteEnrichService(provider repository.DirectionsProvider) *RouteEnrichService {
	return &RouteEnrichService{provider: provider}
}

// EnrichPath 先頭と末尾のウェイポイントを出発地・目的地として推奨経路を取得し、
// デコード済みの新しいパスを返す。ウェイポイントが2点未満、または経路検索に
// 失敗した場合はエラーを返す
func (s *RouteEnrichService) EnrichPath(ctx context.Context, candidate model.CourseCandidate) ([]model.PathPoint, error) {
	waypoints := candidate.Waypoints()
	if len(waypoints) < 2 {
		return nil, errors.New("ウェイポイントが2点未満のため経路検索をスキップ")
	}

	origin := waypointLatLng(waypoints[0])
	destination := waypointLatLng(waypoints[len(waypoints)-1])

	path, err := s.provider.GetRecommendedPath(ctx, origin, destination)
	if err != nil {
		return nil, err
	}
	if len(path) == 0 {
		return nil, errors.New("経路に有効な頂点が含まれていません")
	}

	log.Printf("🛣️ 実道路経路を取得 (%d点, 道のり: %.0fm)", len(path), helper.PathDistanceMeters(path))
	return path, nil
}

// waypointLatLng 緩い形のウェイポイントから座標を型強制付きで取り出す
func waypointLatLng(waypoint any) model.LatLng {
	wp, _ := waypoint.(map[string]any)
	loc, _ := wp["location"].(map[string]any)
	return model.LatLng{
		Lat: model.ToNumber(loc["latitude"], 0),
		Lng: model.ToNumber(loc["longitude"], 0),
	}
}
