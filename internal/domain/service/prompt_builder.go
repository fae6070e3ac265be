package service

import (
	"fmt"
	"strings"

	"RunCourse-App/internal/domain/model"
)

// courseSchemaExample 生成AIに要求する出力スキーマの例（1行のJSONリテラル）
const courseSchemaExample = `{"course": {"description":"","waypoints":[{"name":"","location":{"latitude":0,"longitude":0}}],"running_tips":[],"total_distance_km":0,"expected_duration_minutes":0,"elevation_change_meters":0,"emotional_recommendation":"","difficulty":""}}`

// PromptBuilder ユーザー入力から生成AI向けの自然言語プロンプトを組み立てる
// 入力のみに依存する純粋なビルダーで副作用を持たない
type PromptBuilder struct{}

// NewPromptBuilder 新しいPromptBuilderインスタンスを作成
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Build リクエストからコース生成プロンプトを構築する
func (b *PromptBuilder) Build(req *model.CourseGenerateRequest) string {
	form := req.FormData

	difficultyText, ok := model.PromptDifficultyLabelMap[form.Difficulty]
	if !ok {
		difficultyText = model.DefaultDifficultyLabel
	}

	preferencesText := b.buildPreferencesText(form.Preferences)
	if preferencesText == "" {
		preferencesText = "없음"
	}

	timeText := model.TimeToLabel(form.Time)

	emotionValue := form.EmotionValue()
	emotionText, emotionAdvice := emotionBand(emotionValue)

	additionalInfo := form.AdditionalInfo
	if additionalInfo == "" {
		additionalInfo = "없음"
	}

	return fmt.Sprintf(`다음 조건에 맞는 러닝 코스를 생성해주세요:

위치: %s (좌표: 위도 %s, 경도 %s)
거리: %skm
난이도: %s
선호 환경: %s
러닝 시간대: %s
현재 감정 상태: %s (%d/100) - %s
추가 요청사항: %s

JSON 형식으로만 응답하세요. 스키마:
%s
`,
		form.Location,
		model.FormatNumber(req.Coordinates.Lat),
		model.FormatNumber(req.Coordinates.Lng),
		model.FormatNumber(form.DistanceKm()),
		difficultyText,
		preferencesText,
		timeText,
		emotionText,
		emotionValue,
		emotionAdvice,
		additionalInfo,
		courseSchemaExample)
}

// buildPreferencesText 選好タグを韓国語ラベルに変換してカンマ区切りで連結する
func (b *PromptBuilder) buildPreferencesText(preferences []string) string {
	labels := make([]string, 0, len(preferences))
	for _, pref := range preferences {
		if label, ok := model.PreferenceLabelMap[pref]; ok {
			labels = append(labels, label)
		} else {
			labels = append(labels, pref)
		}
	}
	return strings.Join(labels, ", ")
}

// emotionBand 気分スケールを3段階に分けてラベルと編集指示を返す
// <33 が低域、33-65 が中域、66以上が高域
func emotionBand(value int) (text, advice string) {
	switch {
	case value < 33:
		return "슬픔/우울", "조용하고 평화로운 코스를 추천해주세요."
	case value < 66:
		return "보통/평온", "균형잡힌 코스를 추천해주세요."
	default:
		return "기쁨/행복", "도전적이고 다양한 경관의 코스를 추천해주세요."
	}
}
