package service

import (
	"math"

	"RunCourse-App/internal/domain/model"
)

// CourseNormalizer 生成・フォールバックどちら由来のコース候補も
// 1つの正規スキーマに揃える整形レイヤー
// フィールドごとに 正規キー → 別名キー → 計算デフォルト の順で解決する
type CourseNormalizer struct{}

// NewCourseNormalizer 新しいCourseNormalizerインスタンスを作成
func NewCourseNormalizer() *CourseNormalizer {
	return &CourseNormalizer{}
}

// numericField 数値フィールドの解決ルール
type numericField struct {
	keys   []string // 優先順にたどる候補キー
	absent float64  // どのキーも存在しない場合の計算値
	tail   float64  // 存在したキーが全て数値化に失敗した場合の最終フォールバック
}

// resolveNumber 候補キーを順にたどり、後続キーの値を数値化フォールバックとして解決する
func resolveNumber(src map[string]any, field numericField) float64 {
	values := make([]any, 0, len(field.keys))
	for _, key := range field.keys {
		if v, ok := src[key]; ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return field.absent
	}
	acc := field.tail
	for i := len(values) - 1; i >= 0; i-- {
		acc = model.ToNumber(values[i], acc)
	}
	return acc
}

// Normalize コース候補を正規スキーマに変換する
// 出力の数値フィールドは常に有限値、スライスは常に非nil
func (n *CourseNormalizer) Normalize(candidate model.CourseCandidate, req *model.CourseGenerateRequest) model.Course {
	src := candidate.Course()
	form := req.FormData
	distanceKm := form.DistanceKm()

	totalDistanceKm := resolveNumber(src, numericField{
		keys:   []string{"total_distance_km"},
		absent: distanceKm,
		tail:   distanceKm,
	})

	expectedDurationMinutes := resolveNumber(src, numericField{
		keys:   []string{"expected_duration_minutes", "estimated_time_minutes"},
		absent: ExpectedDurationMinutes(distanceKm, form.Difficulty),
		tail:   0,
	})

	elevationChangeMeters := resolveNumber(src, numericField{
		keys:   []string{"elevation_change_meters", "elevation_change_m"},
		absent: math.Round(distanceKm * 8),
		tail:   0,
	})

	return model.Course{
		Description:             model.ToString(src["description"], ""),
		Waypoints:               n.normalizeWaypoints(src["waypoints"]),
		RunningTips:             n.normalizeRunningTips(src["running_tips"]),
		TotalDistanceKm:         totalDistanceKm,
		ExpectedDurationMinutes: expectedDurationMinutes,
		ElevationChangeMeters:   elevationChangeMeters,
		EmotionalRecommendation: model.ToString(src["emotional_recommendation"], model.ToString(src["emotion"], "")),
		Difficulty:              n.normalizeDifficulty(src["difficulty"], form.Difficulty),
		Path:                    n.normalizePath(src["path"]),
	}
}

// normalizeDifficulty 難易度を確定ラベル集合（산책/쉬움/보통/어려움）に収める
// 候補の値がラベルそのもの、または難易度IDの場合だけ採用し、それ以外は入力から再計算する
func (n *CourseNormalizer) normalizeDifficulty(value any, formDifficulty string) string {
	if s, ok := value.(string); ok {
		if model.IsDifficultyLabel(s) {
			return s
		}
		if label, ok := model.DifficultyLabelMap[s]; ok {
			return label
		}
	}
	return model.DifficultyToLabel(formDifficulty)
}

// normalizeWaypoints ウェイポイント配列を型強制付きで正規化する（配列以外は空スライス）
func (n *CourseNormalizer) normalizeWaypoints(value any) []model.Waypoint {
	raw, ok := value.([]any)
	if !ok {
		return []model.Waypoint{}
	}
	waypoints := make([]model.Waypoint, 0, len(raw))
	for _, item := range raw {
		wp, _ := item.(map[string]any)
		loc, _ := wp["location"].(map[string]any)
		waypoints = append(waypoints, model.Waypoint{
			Name: model.ToString(wp["name"], ""),
			Location: model.GeoLocation{
				Latitude:  model.ToNumber(loc["latitude"], 0),
				Longitude: model.ToNumber(loc["longitude"], 0),
			},
		})
	}
	return waypoints
}

// normalizeRunningTips 文字列要素のみを残してアドバイス配列を正規化する
func (n *CourseNormalizer) normalizeRunningTips(value any) []string {
	raw, ok := value.([]any)
	if !ok {
		return []string{}
	}
	tips := make([]string, 0, len(raw))
	for _, item := range raw {
		if tip, ok := item.(string); ok {
			tips = append(tips, tip)
		}
	}
	return tips
}

// normalizePath パスを正規化する
// JSONパース由来の []any と、合成・エンリッチ由来の []PathPoint の両方を受け付ける
func (n *CourseNormalizer) normalizePath(value any) []model.PathPoint {
	switch raw := value.(type) {
	case []model.PathPoint:
		path := make([]model.PathPoint, len(raw))
		copy(path, raw)
		return path
	case []any:
		path := make([]model.PathPoint, 0, len(raw))
		for _, item := range raw {
			p, _ := item.(map[string]any)
			path = append(path, model.PathPoint{
				Lat: model.ToNumber(p["lat"], 0),
				Lng: model.ToNumber(p["lng"], 0),
			})
		}
		return path
	default:
		return []model.PathPoint{}
	}
}
