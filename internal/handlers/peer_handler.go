package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendsmart/internal/services"
)

// PeerHandler handles peer-comparison requests.
type PeerHandler struct {
	peerService services.PeerServicer
}

// NewPeerHandler creates a new PeerHandler.
func NewPeerHandler(peerService services.PeerServicer) *PeerHandler {
	return &PeerHandler{peerService: peerService}
}

// GetRanking returns the savings leaderboard across all users: the top three
// savers and the next five runners-up.
func (h *PeerHandler) GetRanking(c *gin.Context) {
	ranking, err := h.peerService.RankPeers()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ranking)
}
