package controller

import (
	"micro_learning_backend/internal/service"
	"micro_learning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// Get godoc
// @Summary Progress for a topic
// @Description Returns the caller's progress record, creating a zeroed one on first read
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param topicId path int true "topic id"
// @Success 200 {object} model.UserProgress
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /api/progress/{topicId} [get]
func (c *ProgressController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	topicID := util.MustParseUint(ctx.Param("topicId"))
	if topicID == 0 {
		util.BadRequest(ctx, "invalid topic id")
		return
	}

	progress, err := c.ProgressService.GetOrCreate(claims.UserID, topicID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// Complete godoc
// @Summary Record a lesson completion
// @Description Atomically increments completed lessons and streak and returns the updated record
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param topicId path int true "topic id"
// @Success 200 {object} model.UserProgress
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /api/progress/{topicId} [put]
func (c *ProgressController) Complete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	topicID := util.MustParseUint(ctx.Param("topicId"))
	if topicID == 0 {
		util.BadRequest(ctx, "invalid topic id")
		return
	}

	progress, err := c.ProgressService.CompleteLesson(claims.UserID, topicID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}
