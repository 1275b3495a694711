package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthadvisor/dashboard-engine/internal/core/services"
)

type ArticleHandler struct {
	svc *services.ArticleService
}

func NewArticleHandler(svc *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		svc: svc,
	}
}

func (h *ArticleHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/articles", h.Search)
}

// Search godoc
// @Summary Lifestyle articles
// @Description Case-insensitive match on title or subtitle. No query lists everything.
// @Tags lifestyle
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} domain.Article
// @Failure 500 {object} errorResponse
// @Router /articles [get]
func (h *ArticleHandler) Search(c *gin.Context) {
	articles, err := h.svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, articles)
}
