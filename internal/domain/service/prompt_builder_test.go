package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"RunCourse-App/internal/domain/model"
)

func buildTestRequest() *model.CourseGenerateRequest {
	return &model.CourseGenerateRequest{
		FormData: &model.CourseFormData{
			Location:       "한강공원",
			Distance:       5.0,
			Difficulty:     model.DifficultyEasy,
			Time:           "morning",
			Emotion:        80.0,
			AdditionalInfo: "강변을 따라 달리고 싶어요",
			Preferences:    []string{"park", "river"},
		},
		Coordinates: &model.LatLng{Lat: 37.5, Lng: 127.0},
	}
}

func TestPromptBuilder_Build(t *testing.T) {
	builder := NewPromptBuilder()

	t.Run("全ての条件がプロンプトに含まれる", func(t *testing.T) {
		prompt := builder.Build(buildTestRequest())

		assert.Contains(t, prompt, "위치: 한강공원 (좌표: 위도 37.5, 경도 127)")
		assert.Contains(t, prompt, "거리: 5km")
		assert.Contains(t, prompt, "난이도: 쉬움 (평지 위주)")
		assert.Contains(t, prompt, "선호 환경: 공원, 강/하천")
		assert.Contains(t, prompt, "러닝 시간대: 아침")
		assert.Contains(t, prompt, "추가 요청사항: 강변을 따라 달리고 싶어요")
	})

	t.Run("スキーマ例とJSON限定の指示で終わる", func(t *testing.T) {
		prompt := builder.Build(buildTestRequest())

		assert.Contains(t, prompt, "JSON 형식으로만 응답하세요. 스키마:")
		assert.Contains(t, prompt, courseSchemaExample)
		assert.True(t, strings.HasSuffix(strings.TrimSpace(prompt), courseSchemaExample))
	})

	t.Run("感情値の高域は挑戦的なコースを指示する", func(t *testing.T) {
		prompt := builder.Build(buildTestRequest())

		assert.Contains(t, prompt, "기쁨/행복 (80/100)")
		assert.Contains(t, prompt, "도전적이고 다양한 경관의 코스를 추천해주세요.")
	})

	t.Run("感情値の低域は静かなコースを指示する", func(t *testing.T) {
		req := buildTestRequest()
		req.FormData.Emotion = 10.0
		prompt := builder.Build(req)

		assert.Contains(t, prompt, "슬픔/우울 (10/100)")
		assert.Contains(t, prompt, "조용하고 평화로운 코스를 추천해주세요.")
	})

	t.Run("感情値の未指定は中域の50になる", func(t *testing.T) {
		req := buildTestRequest()
		req.FormData.Emotion = nil
		prompt := builder.Build(req)

		assert.Contains(t, prompt, "보통/평온 (50/100)")
		assert.Contains(t, prompt, "균형잡힌 코스를 추천해주세요.")
	})

	t.Run("未知の値はデフォルトラベルに落ちる", func(t *testing.T) {
		req := buildTestRequest()
		req.FormData.Difficulty = "extreme"
		req.FormData.Time = ""
		req.FormData.Preferences = nil
		req.FormData.AdditionalInfo = ""
		prompt := builder.Build(req)

		assert.Contains(t, prompt, "난이도: 보통")
		assert.Contains(t, prompt, "러닝 시간대: 오후")
		assert.Contains(t, prompt, "선호 환경: 없음")
		assert.Contains(t, prompt, "추가 요청사항: 없음")
	})

	t.Run("未知の選好タグはそのまま通す", func(t *testing.T) {
		req := buildTestRequest()
		req.FormData.Preferences = []string{"park", "beach"}
		prompt := builder.Build(req)

		assert.Contains(t, prompt, "선호 환경: 공원, beach")
	})
}
