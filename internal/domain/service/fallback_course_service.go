package service

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"RunCourse-App/internal/domain/helper"
	"RunCourse-App/internal/domain/model"
)

// pathJitterDegrees 合成パスの各点に与える揺らぎの振幅（±0.0001度）
const pathJitterDegrees = 0.0002

// FallbackCourseService 生成AIに依存せず、数値・カテゴリ入力のみから
// スキーマ的に完全なコース候補を合成するサービス
// 乱数ソースは注入可能で、固定シードを与えれば出力は再現可能
type FallbackCourseService struct {
	rng *rand.Rand
}

// NewFallbackCourseService 新しいFallbackCourseServiceインスタンスを作成
func NewFallbackCourseService() *FallbackCourseService {
	return NewFallbackCourseServiceWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewFallbackCourseServiceWithSource 乱数ソースを指定してインスタンスを作成（テスト用）
func NewFallbackCourseServiceWithSource(src rand.Source) *FallbackCourseService {
	return &FallbackCourseService{rng: rand.New(src)}
}

// BuildCourseCandidate リクエストのみからコース候補を合成する。必ず成功する
func (s *FallbackCourseService) BuildCourseCandidate(req *model.CourseGenerateRequest) model.CourseCandidate {
	form := req.FormData
	distanceKm := form.DistanceKm()

	expectedMinutes := ExpectedDurationMinutes(distanceKm, form.Difficulty)

	path := s.generateLoopPath(*req.Coordinates, distanceKm)
	start := path[0]
	end := path[len(path)-1]

	startName := form.Location
	if startName == "" {
		startName = model.DefaultStartPointName
	}
	endName := form.Location
	if endName == "" {
		endName = model.DefaultEndPointName
	}

	description := fmt.Sprintf("이 코스는 %s 주변의 %skm 코스로, %s 난이도의 지형을 포함하고 있습니다.",
		form.Location, model.FormatNumber(distanceKm), model.DifficultyToLabel(form.Difficulty))

	waterLiters := math.Round(distanceKm * 0.1)

	log.Printf("🧭 フォールバックコースを合成 (距離: %skm, パス: %d点, 道のり: %.0fm)",
		model.FormatNumber(distanceKm), len(path), helper.PathDistanceMeters(path))

	course := map[string]any{
		"description": description,
		"waypoints": []any{
			map[string]any{
				"name": startName,
				"location": map[string]any{
					"latitude":  start.Lat,
					"longitude": start.Lng,
				},
			},
			map[string]any{
				"name": endName,
				"location": map[string]any{
					"latitude":  end.Lat,
					"longitude": end.Lng,
				},
			},
		},
		"running_tips": []any{
			model.TimeBasedTip(form.Time),
			fmt.Sprintf("%skm 거리이므로 약 %sL의 물을 준비하세요.",
				model.FormatNumber(distanceKm), model.FormatNumber(waterLiters)),
			model.DifficultyBasedTip(form.Difficulty),
		},
		"total_distance_km":         distanceKm,
		"expected_duration_minutes": expectedMinutes,
		"elevation_change_meters":   math.Round(distanceKm * 8),
		"emotional_recommendation":  "",
		"difficulty":                model.DifficultyToLabel(form.Difficulty),
		"path":                      path,
	}

	return model.CourseCandidate{"course": course}
}

// generateLoopPath 中心座標の周りに閉ループの合成パスを生成する
// 点数は max(10, round(距離*2))、先頭と末尾は中心座標に一致する
func (s *FallbackCourseService) generateLoopPath(center model.LatLng, distanceKm float64) []model.PathPoint {
	numPoints := int(math.Round(distanceKm * 2))
	if numPoints < 10 {
		numPoints = 10
	}
	radius := distanceKm * 100

	path := make([]model.PathPoint, 0, numPoints)
	path = append(path, model.PathPoint{Lat: center.Lat, Lng: center.Lng})

	for i := 1; i < numPoints-1; i++ {
		angle := float64(i) / float64(numPoints) * 2 * math.Pi
		dx := radius * math.Cos(angle) / 10000
		dy := radius * math.Sin(angle) / 10000
		jitter := pathJitterDegrees * (s.rng.Float64() - 0.5)
		path = append(path, model.PathPoint{
			Lat: center.Lat + dy + jitter,
			Lng: center.Lng + dx + jitter,
		})
	}

	path = append(path, model.PathPoint{Lat: center.Lat, Lng: center.Lng})
	return path
}

// ExpectedDurationMinutes 距離と難易度から予想所要時間（分）を計算する
// 散策は1kmあたり15分、それ以外は1kmあたり6分
func ExpectedDurationMinutes(distanceKm float64, difficulty string) float64 {
	if difficulty == model.DifficultyWalking {
		return math.Round(distanceKm * 15)
	}
	return math.Round(distanceKm * 6)
}
