package controller

import (
	"strconv"

	"kidlearn_backend/internal/service"
	"kidlearn_backend/internal/util"
	"kidlearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	RatingService *service.RatingService
}

func NewRatingController(ratingService *service.RatingService) *RatingController {
	return &RatingController{RatingService: ratingService}
}

// SubmitRatingRequest carries completedLessons for wire compatibility with
// older clients; the server-side progress store is authoritative for the
// completion gate.
// swagger:model SubmitRatingRequest
type SubmitRatingRequest struct {
	CourseID         uint   `json:"courseId" binding:"required"`
	Rating           int    `json:"rating" binding:"required"`
	Review           string `json:"review"`
	CompletedLessons []int  `json:"completedLessons"`
}

// SubmitRating godoc
// @Summary Rate a completed course
// @Description Upserts the caller's rating and recomputes the course average
// @Tags ratings
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SubmitRatingRequest true "rating payload"
// @Success 200 {object} util.Response{data=service.SubmitRatingResult}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/ratings [post]
func (c *RatingController) SubmitRating(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitRatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.RatingService.SubmitRating(ctx.Request.Context(), claims.Email, req.CourseID, req.Rating, req.Review)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	monitoring.RatingSubmissions.Inc()
	util.Success(ctx, gin.H{
		"message": "rating saved",
		"rating":  result.Rating,
		"average": result.AverageRating,
	})
}

// GetCourseRatings godoc
// @Summary Ratings for a course
// @Description Average and total always cover all ratings, not just the page
// @Tags ratings
// @Produce  json
// @Security ApiKeyAuth
// @Param   courseId path int true "course id"
// @Param   userEmail query string false "include this user's own rating"
// @Param   limit query int false "page size" default(10)
// @Success 200 {object} util.Response{data=service.CourseRatingsResult}
// @Failure 404 {object} util.Response
// @Router /api/ratings/course/{courseId} [get]
func (c *RatingController) GetCourseRatings(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("courseId"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	userEmail := ctx.Query("userEmail")
	if userEmail == "" {
		if claims := util.GetUserFromContext(ctx); claims != nil {
			userEmail = claims.Email
		}
	}

	result, err := c.RatingService.GetCourseRatings(courseID, userEmail, limit)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// GetUserRatings godoc
// @Summary All ratings submitted by a user
// @Tags ratings
// @Produce  json
// @Security ApiKeyAuth
// @Param   userEmail query string false "defaults to the caller"
// @Success 200 {object} util.Response{data=[]model.CourseRating}
// @Router /api/ratings/user [get]
func (c *RatingController) GetUserRatings(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	userEmail := ctx.Query("userEmail")
	if userEmail == "" {
		userEmail = claims.Email
	}

	ratings, err := c.RatingService.GetUserRatings(userEmail)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"ratings": ratings})
}
