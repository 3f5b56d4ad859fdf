package rest

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/sentence-chain/domain"
	"github.com/Guyuepp/sentence-chain/internal/rest/middleware"
	"github.com/Guyuepp/sentence-chain/internal/rest/request"
	"github.com/Guyuepp/sentence-chain/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StoryHandler represent the httphandler for the story board
type StoryHandler struct {
	Service  domain.StoryUsecase
	Likes    domain.LikeUsecase
	Activity domain.ActivityTracker
	Clock    domain.Clock
}

func NewStoryHandler(svc domain.StoryUsecase, likes domain.LikeUsecase, activity domain.ActivityTracker, clock domain.Clock) *StoryHandler {
	return &StoryHandler{
		Service:  svc,
		Likes:    likes,
		Activity: activity,
		Clock:    clock,
	}
}

// Register mounts the story routes on r
func (h *StoryHandler) Register(r gin.IRoutes) {
	r.GET("/board", h.Board)
	r.GET("/status", h.Status)
	r.GET("/sentences", h.Feed)
	r.POST("/sentences", h.Submit)
	r.GET("/sentences/top", h.Leaderboard)
	r.POST("/sentences/:id/like", h.ToggleLike)
	r.GET("/archive", h.Archive)
	r.POST("/counter", h.Counter)
}

func profileOf(c *gin.Context) string {
	return c.GetString(middleware.ProfileKey)
}

// Board is the page load: daily policy, feed, leaderboard and status
func (h *StoryHandler) Board(c *gin.Context) {
	profile := profileOf(c)
	h.Activity.Touch(profile)

	b, err := h.Service.Board(c.Request.Context(), profile)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewBoard(&b, h.Clock.Now()))
}

func (h *StoryHandler) Status(c *gin.Context) {
	status, err := h.Service.Status(c.Request.Context(), profileOf(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *StoryHandler) Feed(c *gin.Context) {
	items, err := h.Service.Feed(c.Request.Context(), profileOf(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewFeed(items, h.Clock.Now()))
}

// Submit will store the sentence by given request body
func (h *StoryHandler) Submit(c *gin.Context) {
	var req request.Sentence
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Code: "bad_request", Message: err.Error()})
		return
	}

	s, err := h.Service.Submit(c.Request.Context(), profileOf(c), req.ToDomain())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewSentenceFromDomain(&s))
}

func (h *StoryHandler) Leaderboard(c *gin.Context) {
	top, err := h.Service.Leaderboard(c.Request.Context(), profileOf(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewLeaderboard(top))
}

// ToggleLike likes the sentence, or takes the like back
func (h *StoryHandler) ToggleLike(c *gin.Context) {
	state, err := h.Likes.Toggle(c.Request.Context(), profileOf(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *StoryHandler) Archive(c *gin.Context) {
	days, err := h.Service.Archive(c.Request.Context(), profileOf(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewArchive(days))
}

func (h *StoryHandler) Counter(c *gin.Context) {
	var req request.Counter
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Code: "bad_request", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCounter(utf8.RuneCountInString(req.Text)))
}

func writeError(c *gin.Context, err error) {
	c.JSON(getStatusCode(err), ResponseError{Code: errorCode(err), Message: err.Error()})
}

// getStatusCode will get the code of the error from the usecases
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrEmptySentence),
		errors.Is(err, domain.ErrSentenceTooLong),
		errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadySubmitted):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		logrus.Error(err)
		return http.StatusInternalServerError
	}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptySentence):
		return "empty_sentence"
	case errors.Is(err, domain.ErrSentenceTooLong):
		return "sentence_too_long"
	case errors.Is(err, domain.ErrAlreadySubmitted):
		return "already_submitted"
	case errors.Is(err, domain.ErrBadParamInput):
		return "bad_request"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
