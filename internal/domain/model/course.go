package model

// LatLng 緯度経度を表す基本的な型（経路検索などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CourseFormData ユーザーが入力したコース生成条件
// distance と emotion は歴代クライアントの都合で文字列・数値のどちらでも届くため any で受ける
type CourseFormData struct {
	Location       string   `json:"location"`       // 地名（例: "한강공원"）
	Distance       any      `json:"distance"`       // 距離km（数値または "5km" のような文字列）
	Difficulty     string   `json:"difficulty"`     // walking / easy / medium / hard
	Time           string   `json:"time"`           // morning / afternoon / evening / night
	Emotion        any      `json:"emotion"`        // 気分スケール 0-100
	AdditionalInfo string   `json:"additionalInfo"` // 自由記述の追加要望
	Preferences    []string `json:"preferences"`    // 選好タグ（park, river, trail, urban）
}

// DistanceKm 距離を数値として取得する（変換できない場合は0）
func (f *CourseFormData) DistanceKm() float64 {
	return ToNumber(f.Distance, 0)
}

// EmotionValue 気分スケールを整数として取得する（未指定・変換不能は50）
func (f *CourseFormData) EmotionValue() int {
	return int(ToNumber(f.Emotion, 50))
}

// CourseGenerateRequest コース生成APIのリクエストボディ
type CourseGenerateRequest struct {
	FormData    *CourseFormData `json:"formData"`
	Coordinates *LatLng         `json:"coordinates"`
}

// GeoLocation ウェイポイントの位置情報
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Waypoint コース上の経由地点
type Waypoint struct {
	Name     string      `json:"name"`
	Location GeoLocation `json:"location"`
}

// PathPoint ポリライン上の1点
type PathPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Course クライアントに返す正規化済みのコーススキーマ
// 数値フィールドは常に有限値、スライスは常に非nil
type Course struct {
	Description             string     `json:"description"`
	Waypoints               []Waypoint `json:"waypoints"`
	RunningTips             []string   `json:"running_tips"`
	TotalDistanceKm         float64    `json:"total_distance_km"`
	ExpectedDurationMinutes float64    `json:"expected_duration_minutes"`
	ElevationChangeMeters   float64    `json:"elevation_change_meters"`
	EmotionalRecommendation string     `json:"emotional_recommendation"`
	Difficulty              string     `json:"difficulty"`
	Path                    []PathPoint `json:"path"`
}

// CourseGenerateResponse コース生成APIのレスポンスボディ
type CourseGenerateResponse struct {
	Course Course `json:"course"`
}

// CourseCandidate 生成AIまたはフォールバック由来の未検証コースデータ
// フィールドの欠落・別名・型違いがあり得るため、正規化まではマップのまま扱う
type CourseCandidate map[string]any

// Course candidate内の "course" オブジェクトを取得する（存在しない場合は空マップ）
func (c CourseCandidate) Course() map[string]any {
	if course, ok := c["course"].(map[string]any); ok {
		return course
	}
	return map[string]any{}
}

// Waypoints candidate内のウェイポイント配列を取得する（存在しない場合は空スライス）
func (c CourseCandidate) Waypoints() []any {
	if wps, ok := c.Course()["waypoints"].([]any); ok {
		return wps
	}
	return []any{}
}

// SetPath candidateのパスを差し替える（経路エンリッチ成功時のみ呼ばれる）
func (c CourseCandidate) SetPath(path []PathPoint) {
	course, ok := c["course"].(map[string]any)
	if !ok {
		course = map[string]any{}
		c["course"] = course
	}
	course["path"] = path
}
