package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendsmart/internal/errors"
	"spendsmart/internal/models"
	"spendsmart/internal/services"
)

// ChallengeHandler handles group-challenge requests.
type ChallengeHandler struct {
	challengeService services.ChallengeServicer
}

// NewChallengeHandler creates a new ChallengeHandler.
func NewChallengeHandler(challengeService services.ChallengeServicer) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// ListChallenges returns the caller's challenges partitioned into active and
// past, each with a leaderboard and the caller's progress.
func (h *ChallengeHandler) ListChallenges(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	list, err := h.challengeService.ListChallenges(owner, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// CreateChallengeRequest represents the payload for creating a challenge
type CreateChallengeRequest struct {
	Name         string   `json:"name" binding:"required,max=200"`
	Type         string   `json:"type" binding:"required,challenge_type"`
	StartDate    string   `json:"start_date" binding:"required,iso_date"`
	EndDate      string   `json:"end_date" binding:"required,iso_date"`
	Participants []string `json:"participants" binding:"required,min=1"`
}

// CreateChallenge creates a new group challenge.
func (h *ChallengeHandler) CreateChallenge(c *gin.Context) {
	if _, err := getOwner(c); err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	challenge, err := h.challengeService.CreateChallenge(
		req.Name,
		models.ChallengeType(req.Type),
		req.StartDate,
		req.EndDate,
		req.Participants,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"challenge": challenge})
}
