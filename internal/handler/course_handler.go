package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"RunCourse-App/internal/domain/model"
	"RunCourse-App/internal/usecase"
)

// CourseHandler コース生成APIのハンドラー
type CourseHandler struct {
	generateUseCase usecase.CourseGenerateUseCase
}

// NewCourseHandler 新しいCourseHandlerインスタンスを作成
func NewCourseHandler(generateUseCase usecase.CourseGenerateUseCase) *CourseHandler {
	return &CourseHandler{generateUseCase: generateUseCase}
}

// PostGenerateCourse コースを生成するエンドポイント
// POST /api/generate-course
func (h *CourseHandler) PostGenerateCourse(c *gin.Context) {
	var req model.CourseGenerateRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "formData와 coordinates가 필요합니다.",
		})
		return
	}

	// バリデーション（外部呼び出しの前に即座に弾く）
	if err := h.validateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "formData와 coordinates가 필요합니다.",
			"details": err.Error(),
		})
		return
	}

	// UseCase呼び出し
	response, err := h.generateUseCase.GenerateCourse(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrGenerationNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "OpenAI API 키가 설정되지 않았습니다.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "코스 생성 중 오류가 발생했습니다.",
			"detail": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// validateRequest リクエストの詳細バリデーションを行う
func (h *CourseHandler) validateRequest(req *model.CourseGenerateRequest) error {
	if req.FormData == nil {
		return &ValidationError{Field: "formData", Message: "formDataは必須です"}
	}
	if req.Coordinates == nil {
		return &ValidationError{Field: "coordinates", Message: "coordinatesは必須です"}
	}

	// 緯度経度の範囲チェック
	if req.Coordinates.Lat < -90 || req.Coordinates.Lat > 90 {
		return &ValidationError{Field: "coordinates.lat", Message: "緯度は-90から90の範囲で指定してください"}
	}
	if req.Coordinates.Lng < -180 || req.Coordinates.Lng > 180 {
		return &ValidationError{Field: "coordinates.lng", Message: "経度は-180から180の範囲で指定してください"}
	}

	return nil
}

// ValidationError バリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
