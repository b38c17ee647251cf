package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	comparisonapp "github.com/electrostore/backend/internal/application/comparison"
)

// ComparisonHandler handles product comparison endpoints
type ComparisonHandler struct {
	BaseHandler
	comparisonService *comparisonapp.ComparisonService
	logger            *zap.Logger
}

// NewComparisonHandler creates a new ComparisonHandler
func NewComparisonHandler(comparisonService *comparisonapp.ComparisonService, logger *zap.Logger) *ComparisonHandler {
	return &ComparisonHandler{
		comparisonService: comparisonService,
		logger:            logger,
	}
}

// Compare builds a side-by-side comparison of two products.
// Works for anonymous callers; signed-in callers also get the
// comparison recorded in their history.
func (h *ComparisonHandler) Compare(c *gin.Context) {
	leftID, err := uuid.Parse(c.Query("left"))
	if err != nil {
		h.BadRequest(c, "Invalid left product ID")
		return
	}

	rightID, err := uuid.Parse(c.Query("right"))
	if err != nil {
		h.BadRequest(c, "Invalid right product ID")
		return
	}

	result, err := h.comparisonService.Compare(c.Request.Context(), leftID, rightID, getOptionalUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// History returns the caller's recent comparisons
func (h *ComparisonHandler) History(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	entries, err := h.comparisonService.GetHistory(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entries)
}
