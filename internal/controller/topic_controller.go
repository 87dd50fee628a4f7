package controller

import (
	"errors"
	"micro_learning_backend/internal/service"
	"micro_learning_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TopicController struct {
	TopicService *service.TopicService
}

func NewTopicController(topicService *service.TopicService) *TopicController {
	return &TopicController{TopicService: topicService}
}

// List godoc
// @Summary List all topics
// @Tags topics
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Topic
// @Failure 401 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /api/topics [get]
func (c *TopicController) List(ctx *gin.Context) {
	topics, err := c.TopicService.List(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, topics)
}

// swagger:model SuggestTopicsRequest
type SuggestTopicsRequest struct {
	Category string `json:"category" binding:"required"`
}

// Suggest godoc
// @Summary Generate topic suggestions for a category
// @Description One upstream generation attempt; suggestions are not persisted
// @Tags generation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SuggestTopicsRequest true "category"
// @Success 200 {array} model.TopicSuggestion
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Failure 502 {object} util.ErrorResponse "generation failed"
// @Router /api/generate/topics [post]
func (c *TopicController) Suggest(ctx *gin.Context) {
	var req SuggestTopicsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	suggestions, err := c.TopicService.Suggest(ctx.Request.Context(), req.Category)
	if err != nil {
		if errors.Is(err, util.ErrGenerationFailed) {
			util.Error(ctx, http.StatusBadGateway, util.ErrGenerationFailed.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, suggestions)
}
