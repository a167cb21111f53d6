package controller

import (
	"kidlearn_backend/internal/service"
	"kidlearn_backend/internal/util"
	"kidlearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
	CourseService   *service.CourseService
	AuthService     *service.AuthService
}

func NewProgressController(progressService *service.ProgressService, courseService *service.CourseService, authService *service.AuthService) *ProgressController {
	return &ProgressController{
		ProgressService: progressService,
		CourseService:   courseService,
		AuthService:     authService,
	}
}

// swagger:model CompleteLessonRequest
type CompleteLessonRequest struct {
	LessonTitle string `json:"lessonTitle"`
}

// GetProgress godoc
// @Summary Progress and per-lesson unlock state for a course
// @Tags progress
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "course id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	course, err := c.CourseService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	eval, err := c.ProgressService.GetProgress(ctx.Request.Context(), claims.Email, course.ID, course.Lessons)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	lessons, err := c.ProgressService.LessonStates(ctx.Request.Context(), claims.Email, course.ID, course.Lessons)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"progress": eval,
		"lessons":  lessons,
	})
}

// CompleteLesson godoc
// @Summary Mark a lesson complete
// @Description Idempotent: re-completing an ordinal changes nothing
// @Tags progress
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "course id"
// @Param   ordinal path int true "1-indexed lesson ordinal"
// @Param   body body CompleteLessonRequest false "lesson metadata"
// @Success 200 {object} util.Response{data=service.Evaluation}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/lessons/{ordinal}/complete [post]
func (c *ProgressController) CompleteLesson(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	course, err := c.CourseService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	ordinal := int(util.MustParseUint(ctx.Param("ordinal")))

	var req CompleteLessonRequest
	// Body is optional; ignore parse errors for an empty body.
	ctx.ShouldBindJSON(&req)

	eval, err := c.ProgressService.CompleteLesson(ctx.Request.Context(), user, course, ordinal, req.LessonTitle)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	monitoring.LessonCompletions.Inc()
	util.Success(ctx, eval)
}
