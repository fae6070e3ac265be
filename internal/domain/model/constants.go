package model

// DifficultyConstants コース難易度の定数
const (
	DifficultyWalking = "walking"
	DifficultyEasy    = "easy"
	DifficultyMedium  = "medium"
	DifficultyHard    = "hard"
)

// DifficultyLabelMap 難易度IDから韓国語ラベルへのマッピング（正規化後の確定ラベル）
var DifficultyLabelMap = map[string]string{
	DifficultyWalking: "산책",
	DifficultyEasy:    "쉬움",
	DifficultyMedium:  "보통",
	DifficultyHard:    "어려움",
}

// DefaultDifficultyLabel 未知の難易度に対するデフォルトラベル
const DefaultDifficultyLabel = "보통"

// DifficultyToLabel 難易度IDから韓国語ラベルを取得する
func DifficultyToLabel(difficulty string) string {
	if label, ok := DifficultyLabelMap[difficulty]; ok {
		return label
	}
	return DefaultDifficultyLabel
}

// IsDifficultyLabel 文字列が確定ラベル集合に含まれるかを判定する
func IsDifficultyLabel(s string) bool {
	for _, label := range DifficultyLabelMap {
		if s == label {
			return true
		}
	}
	return false
}

// PromptDifficultyLabelMap プロンプト向けの説明付き難易度ラベル
var PromptDifficultyLabelMap = map[string]string{
	DifficultyWalking: "산책",
	DifficultyEasy:    "쉬움 (평지 위주)",
	DifficultyMedium:  "보통",
	DifficultyHard:    "어려움 (언덕 포함)",
}

// PreferenceLabelMap 選好タグから韓国語ラベルへのマッピング（未知のタグはそのまま通す）
var PreferenceLabelMap = map[string]string{
	"park":  "공원",
	"river": "강/하천",
	"trail": "트레일",
	"urban": "도심",
}

// TimeLabelMap 時間帯IDから韓国語ラベルへのマッピング
var TimeLabelMap = map[string]string{
	"morning":   "아침",
	"afternoon": "오후",
	"evening":   "저녁",
	"night":     "밤",
}

// DefaultTimeLabel 未知の時間帯に対するデフォルトラベル
const DefaultTimeLabel = "오후"

// TimeToLabel 時間帯IDから韓国語ラベルを取得する
func TimeToLabel(timeOfDay string) string {
	if label, ok := TimeLabelMap[timeOfDay]; ok {
		return label
	}
	return DefaultTimeLabel
}

// timeBasedTipMap 時間帯ごとのランニングアドバイス
var timeBasedTipMap = map[string]string{
	"morning":   "아침 러닝은 체온이 낮으므로 충분한 준비운동을 하세요.",
	"afternoon": "오후에는 자외선이 강하니 자외선 차단제와 모자를 준비하세요.",
	"evening":   "저녁 시간에는 기온이 떨어지므로 얇은 겉옷을 준비하세요.",
	"night":     "야간 러닝 시에는 반사 소재의 의류나 LED 라이트를 착용하세요.",
}

// TimeBasedTip 時間帯に応じたアドバイスを取得する（未知の時間帯は午後扱い）
func TimeBasedTip(timeOfDay string) string {
	if tip, ok := timeBasedTipMap[timeOfDay]; ok {
		return tip
	}
	return timeBasedTipMap["afternoon"]
}

// difficultyBasedTipMap 難易度ごとのランニングアドバイス
var difficultyBasedTipMap = map[string]string{
	DifficultyWalking: "산책은 편안한 신발과 여유로운 마음으로 즐기세요.",
	DifficultyEasy:    "쉬운 코스는 초보자에게 적합합니다. 충분한 수분 섭취를 잊지 마세요.",
	DifficultyMedium:  "보통 난이도는 체력에 맞게 페이스를 조절하세요.",
	DifficultyHard:    "어려운 코스는 충분한 준비운동과 휴식이 필요합니다.",
}

// DefaultDifficultyTip 未知の難易度に対するデフォルトアドバイス
const DefaultDifficultyTip = "체력에 맞는 페이스로 러닝하세요."

// DifficultyBasedTip 難易度に応じたアドバイスを取得する
func DifficultyBasedTip(difficulty string) string {
	if tip, ok := difficultyBasedTipMap[difficulty]; ok {
		return tip
	}
	return DefaultDifficultyTip
}

// デフォルトのウェイポイント名（locationが空の場合に使用）
const (
	DefaultStartPointName = "출발지"
	DefaultEndPointName   = "도착지"
)
