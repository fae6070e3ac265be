package service

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RunCourse-App/internal/domain/model"
)

func normalizerTestRequest() *model.CourseGenerateRequest {
	return &model.CourseGenerateRequest{
		FormData: &model.CourseFormData{
			Location:   "Park",
			Distance:   5.0,
			Difficulty: model.DifficultyEasy,
		},
		Coordinates: &model.LatLng{Lat: 37.5, Lng: 127.0},
	}
}

func TestCourseNormalizer_Normalize(t *testing.T) {
	normalizer := NewCourseNormalizer()

	t.Run("空の候補でも全フィールドが埋まる", func(t *testing.T) {
		course := normalizer.Normalize(model.CourseCandidate{}, normalizerTestRequest())

		assert.Equal(t, 5.0, course.TotalDistanceKm)
		assert.Equal(t, 30.0, course.ExpectedDurationMinutes)
		assert.Equal(t, 40.0, course.ElevationChangeMeters)
		assert.Equal(t, "쉬움", course.Difficulty)
		assert.Equal(t, "", course.Description)
		assert.Equal(t, "", course.EmotionalRecommendation)

		// スライスは常に非nil
		assert.NotNil(t, course.Waypoints)
		assert.NotNil(t, course.RunningTips)
		assert.NotNil(t, course.Path)
		assert.Empty(t, course.Waypoints)
	})

	t.Run("散策の計算デフォルトは1kmあたり15分", func(t *testing.T) {
		req := normalizerTestRequest()
		req.FormData.Difficulty = model.DifficultyWalking
		course := normalizer.Normalize(model.CourseCandidate{}, req)

		assert.Equal(t, 75.0, course.ExpectedDurationMinutes)
		assert.Equal(t, "산책", course.Difficulty)
	})

	t.Run("正規キーが存在すればそのまま使う", func(t *testing.T) {
		candidate := model.CourseCandidate{
			"course": map[string]any{
				"description":               "한강을 따라 달리는 코스",
				"total_distance_km":         6.2,
				"expected_duration_minutes": 45.0,
				"elevation_change_meters":   80.0,
				"emotional_recommendation":  "기분 전환에 좋아요",
				"difficulty":                "어려움",
			},
		}
		course := normalizer.Normalize(candidate, normalizerTestRequest())

		assert.Equal(t, "한강을 따라 달리는 코스", course.Description)
		assert.Equal(t, 6.2, course.TotalDistanceKm)
		assert.Equal(t, 45.0, course.ExpectedDurationMinutes)
		assert.Equal(t, 80.0, course.ElevationChangeMeters)
		assert.Equal(t, "기분 전환에 좋아요", course.EmotionalRecommendation)
		assert.Equal(t, "어려움", course.Difficulty)
	})

	t.Run("別名キーで解決できる", func(t *testing.T) {
		candidate := model.CourseCandidate{
			"course": map[string]any{
				"estimated_time_minutes": 50.0,
				"elevation_change_m":     120.0,
				"emotion":                "차분한 마음으로 달리세요",
			},
		}
		course := normalizer.Normalize(candidate, normalizerTestRequest())

		assert.Equal(t, 50.0, course.ExpectedDurationMinutes)
		assert.Equal(t, 120.0, course.ElevationChangeMeters)
		assert.Equal(t, "차분한 마음으로 달리세요", course.EmotionalRecommendation)
	})

	t.Run("単位付き文字列の数値も強制変換する", func(t *testing.T) {
		candidate := model.CourseCandidate{
			"course": map[string]any{
				"total_distance_km":       "6.2km",
				"elevation_change_meters": "약 80m",
			},
		}
		course := normalizer.Normalize(candidate, normalizerTestRequest())

		assert.Equal(t, 6.2, course.TotalDistanceKm)
		assert.Equal(t, 80.0, course.ElevationChangeMeters)
	})

	t.Run("正規キーが数値化できない場合は別名キーに落ちる", func(t *testing.T) {
		candidate := model.CourseCandidate{
			"course": map[string]any{
				"expected_duration_minutes": "알 수 없음",
				"estimated_time_minutes":    50.0,
			},
		}
		course := normalizer.Normalize(candidate, normalizerTestRequest())
		assert.Equal(t, 50.0, course.ExpectedDurationMinutes)
	})

	t.Run("ウェイポイントの座標は型強制され欠損は0になる", func(t *testing.T) {
		candidate := model.CourseCandidate{
			"course": map[string]any{
				"waypoints": []any{
					map[string]any{
						"name": "출발지",
						"location": map[string]any{
							"latitude":  "37.5",
							"longitude": 127.0,
						},
					},
					map[string]any{
						"location": map[string]any{"latitude": "invalid"},
					},
				},
			},
		}
		course := normalizer.Normalize(candidate, normalizerTestRequest())
		require.Len(t, course.Waypoints, 2)

		assert.Equal(t, "출발지", course.Waypoints[0].Name)
		assert.Equal(t, 37.5, course.Waypoints[0].Location.Latitude)
		assert.Equal(t, 127.0, course.Waypoints[0].Location.Longitude)

		assert.Equal(t, "", course.Waypoints[1].Name)
		assert.Equal(t, 0.0, course.Waypoints[1].Location.Latitude)
		assert.Equal(t, 0.0, course.Waypoints[1].Location.Longitude)
	})

	t.Run("アドバイス配列は文字列要素のみ残す", func(t *testing.T) {
		candidate := model.CourseCandidate{
			"course": map[string]any{
				"running_tips": []any{"수분을 충분히 섭취하세요", 42.0, "준비운동을 하세요"},
			},
		}
		course := normalizer.Normalize(candidate, normalizerTestRequest())
		assert.Equal(t, []string{"수분을 충분히 섭취하세요", "준비운동을 하세요"}, course.RunningTips)
	})

	t.Run("JSON由来のパスも型強制される", func(t *testing.T) {
		candidate := model.CourseCandidate{
			"course": map[string]any{
				"path": []any{
					map[string]any{"lat": 37.5, "lng": 127.0},
					map[string]any{"lat": "37.501", "lng": "127.001"},
				},
			},
		}
		course := normalizer.Normalize(candidate, normalizerTestRequest())
		require.Len(t, course.Path, 2)
		assert.Equal(t, model.PathPoint{Lat: 37.5, Lng: 127.0}, course.Path[0])
		assert.Equal(t, model.PathPoint{Lat: 37.501, Lng: 127.001}, course.Path[1])
	})

	t.Run("難易度は確定ラベル集合の外に出ない", func(t *testing.T) {
		candidate := model.CourseCandidate{
			"course": map[string]any{"difficulty": "아주 어려움"},
		}
		course := normalizer.Normalize(candidate, normalizerTestRequest())
		assert.Equal(t, "쉬움", course.Difficulty)

		// 難易度IDが返ってきた場合はラベルに変換する
		candidate = model.CourseCandidate{
			"course": map[string]any{"difficulty": "hard"},
		}
		course = normalizer.Normalize(candidate, normalizerTestRequest())
		assert.Equal(t, "어려움", course.Difficulty)
	})

	t.Run("フォールバック候補の正規化後も全数値が有限", func(t *testing.T) {
		fallback := NewFallbackCourseServiceWithSource(rand.NewSource(1))
		req := normalizerTestRequest()
		course := normalizer.Normalize(fallback.BuildCourseCandidate(req), req)

		for _, v := range []float64{course.TotalDistanceKm, course.ExpectedDurationMinutes, course.ElevationChangeMeters} {
			assert.False(t, math.IsNaN(v))
			assert.False(t, math.IsInf(v, 0))
		}
		assert.Len(t, course.Waypoints, 2)
		assert.Len(t, course.RunningTips, 3)
		assert.Len(t, course.Path, 10)
		assert.Equal(t, course.Path[0], course.Path[len(course.Path)-1])
	})
}
