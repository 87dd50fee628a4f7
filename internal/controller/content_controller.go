package controller

import (
	"errors"
	"micro_learning_backend/internal/model"
	"micro_learning_backend/internal/service"
	"micro_learning_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// ListByTopic godoc
// @Summary List lesson content for a topic
// @Description Items are ordered newest first
// @Tags content
// @Produce json
// @Security ApiKeyAuth
// @Param topicId path int true "topic id"
// @Success 200 {array} model.LearningContent
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /api/content/{topicId} [get]
func (c *ContentController) ListByTopic(ctx *gin.Context) {
	topicID := util.MustParseUint(ctx.Param("topicId"))
	if topicID == 0 {
		util.BadRequest(ctx, "invalid topic id")
		return
	}

	contents, err := c.ContentService.ListByTopic(topicID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, contents)
}

// swagger:model CreateContentRequest
type CreateContentRequest struct {
	TopicID  uint   `json:"topicId" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Source   string `json:"source"`
	ReadTime int    `json:"readTime"`
}

// Create godoc
// @Summary Create a content item
// @Description Items are immutable once stored; the server stamps id and creation time
// @Tags content
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateContentRequest true "content payload"
// @Success 201 {object} model.LearningContent
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /api/content [post]
func (c *ContentController) Create(ctx *gin.Context) {
	var req CreateContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	content := &model.LearningContent{
		TopicID:  req.TopicID,
		Title:    req.Title,
		Content:  req.Content,
		Source:   req.Source,
		ReadTime: req.ReadTime,
	}

	if err := c.ContentService.Create(content); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, content)
}

// swagger:model GenerateLessonRequest
type GenerateLessonRequest struct {
	TopicID    uint   `json:"topicId" binding:"required"`
	Difficulty string `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
}

// swagger:model GenerateLessonResponse
type GenerateLessonResponse struct {
	Content *model.LearningContent `json:"content"`
	Quiz    *model.Quiz            `json:"quiz"`
}

// GenerateLesson godoc
// @Summary Generate and store a lesson for a topic
// @Description One upstream generation attempt; the lesson text is persisted, the quiz is returned alongside
// @Tags generation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body GenerateLessonRequest true "generation parameters"
// @Success 201 {object} GenerateLessonResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse "unknown topic"
// @Failure 502 {object} util.ErrorResponse "generation failed"
// @Router /api/generate/lesson [post]
func (c *ContentController) GenerateLesson(ctx *gin.Context) {
	var req GenerateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = "beginner"
	}

	content, quiz, err := c.ContentService.GenerateLesson(ctx.Request.Context(), req.TopicID, req.Difficulty)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTopicNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrGenerationFailed):
			util.Error(ctx, http.StatusBadGateway, util.ErrGenerationFailed.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, GenerateLessonResponse{Content: content, Quiz: quiz})
}
