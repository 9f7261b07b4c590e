package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cogniboost/progress-system/internal/core/domain"
	"github.com/cogniboost/progress-system/internal/core/ports"
)

// ProfileHandler handles questionnaire intake and the dashboard profile view.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// SubmitIntake handles POST /v1/questionnaire.
//
// @Summary      Record onboarding questionnaire answers
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      intakeRequest  true  "Questionnaire answers"
// @Success      200   {object}  intakeResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/questionnaire [post]
func (h *ProfileHandler) SubmitIntake(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req intakeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	summary, err := h.service.SubmitIntake(c.Request().Context(), ports.IntakeInput{
		UserID:   userID,
		Age:      req.Age,
		Goal:     req.Goal,
		Concerns: req.Concerns,
		PlayTime: req.PlayTime,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, intakeResponse{
		Message: "questionnaire saved",
		User: userSummaryResponse{
			ID:    summary.ID,
			Name:  summary.Name,
			Email: summary.Email,
		},
	})
}

// Me handles GET /v1/users/me, the dashboard view.
//
// @Summary      Get the authenticated user's profile and game progress
// @Tags         profile
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileResponse(user))
}

func toProfileResponse(u *domain.User) profileResponse {
	resp := profileResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Age:   u.Age,
		GameProgress: gameProgressResponse{
			MemoryMatch:   toProgressResponse(u.GameProgress.MemoryMatch),
			MathChallenge: toProgressResponse(u.GameProgress.MathChallenge),
			ColorMatch:    toProgressResponse(u.GameProgress.ColorMatch),
			SpeedClick:    toProgressResponse(u.GameProgress.SpeedClick),
		},
	}
	if u.Questionnaire != nil {
		resp.Questionnaire = &questionnaireResponse{
			Goal:     u.Questionnaire.Goal,
			Concerns: u.Questionnaire.Concerns,
			PlayTime: u.Questionnaire.PlayTime,
		}
	}
	return resp
}

func toProgressResponse(p domain.Progress) progressResponse {
	return progressResponse{Score: p.Score, Played: p.Played}
}
