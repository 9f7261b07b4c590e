package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cogniboost/progress-system/internal/core/ports"
)

// ScoreHandler handles game-completion reports.
type ScoreHandler struct {
	service ports.ScoreService
}

func NewScoreHandler(service ports.ScoreService) *ScoreHandler {
	return &ScoreHandler{service: service}
}

// Submit handles POST /v1/games/score.
//
// @Summary      Submit a game score
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        Submission-Id  header    string              false  "Client id for this game-end report; duplicate deliveries are dropped"
// @Param        body           body      submitScoreRequest  true   "Game kind and final score"
// @Success      200            {object}  submitScoreResponse
// @Failure      400            {object}  errorResponse
// @Failure      401            {object}  errorResponse
// @Failure      404            {object}  errorResponse
// @Failure      500            {object}  errorResponse
// @Router       /v1/games/score [post]
func (h *ScoreHandler) Submit(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req submitScoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Submit(c.Request().Context(), ports.SubmitScoreInput{
		UserID:       userID,
		Game:         req.Game,
		Score:        req.Score,
		SubmissionID: c.Request().Header.Get("Submission-Id"),
	})
	if err != nil {
		return err
	}

	msg := "score saved"
	if result.Duplicate {
		msg = "duplicate submission ignored"
	}
	return c.JSON(http.StatusOK, submitScoreResponse{
		Message:      msg,
		NewHighScore: result.NewHighScore,
	})
}
