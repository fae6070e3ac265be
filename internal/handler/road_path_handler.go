package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"RunCourse-App/internal/domain/repository"
)

// RoadPathHandler 経路検索パススルーAPIのハンドラー
type RoadPathHandler struct {
	provider repository.DirectionsProvider // nilの場合は経路検索機能が無効
}

// NewRoadPathHandler 新しいRoadPathHandlerインスタンスを作成
func NewRoadPathHandler(provider repository.DirectionsProvider) *RoadPathHandler {
	return &RoadPathHandler{provider: provider}
}

// GetRoadPath 道路経路を検索して上流のレスポンスをそのまま返すエンドポイント
// GET /api/road-path?origin=経度,緯度&destination=経度,緯度
func (h *RoadPathHandler) GetRoadPath(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")

	if origin == "" || destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "origin, destination required",
		})
		return
	}

	if h.provider == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "KAKAO_REST_API_KEY not configured",
		})
		return
	}

	raw, err := h.provider.GetRawDirections(c.Request.Context(), origin, destination)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}
