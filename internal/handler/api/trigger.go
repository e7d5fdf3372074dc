package api

import (
	"net/http"

	"alert-engine/internal/domain/subscription"
	"alert-engine/internal/handler/httperr"
	"alert-engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TriggerHandler exposes the two internal entry points of the core: the
// posting-created hook and a manual digest run for operational backfills.
type TriggerHandler struct {
	digest   usecase.DigestCommands
	realtime usecase.RealtimeCommands
}

func NewTriggerHandler(digest usecase.DigestCommands, realtime usecase.RealtimeCommands) *TriggerHandler {
	return &TriggerHandler{digest: digest, realtime: realtime}
}

type realtimeResponse struct {
	Suppressed bool `json:"suppressed"`
	Candidates int  `json:"candidates"`
	Pushed     int  `json:"pushed"`
	Cleared    int  `json:"cleared"`
	Failed     int  `json:"failed"`
}

// PostingCreated handles the posting-created hook fired by the authoring
// side once per new (or status-changed) posting.
func (h *TriggerHandler) PostingCreated(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid posting id", nil)
		return
	}

	result, err := h.realtime.NotifyPostingCreated(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "realtime notification failed", nil)
		return
	}

	c.JSON(http.StatusOK, realtimeResponse{
		Suppressed: result.Suppressed,
		Candidates: result.Candidates,
		Pushed:     result.Pushed,
		Cleared:    result.Cleared,
		Failed:     result.Failed,
	})
}

type digestRunResponse struct {
	Frequency string `json:"frequency"`
	Processed int    `json:"processed"`
	Sent      int    `json:"sent"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
}

// RunDigest triggers one digest pass outside the cron cadence.
func (h *TriggerHandler) RunDigest(c *gin.Context) {
	freq, err := subscription.NewFrequency(c.Param("frequency"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid digest frequency", nil)
		return
	}

	result, err := h.digest.Run(c.Request.Context(), usecase.DigestRequest{Frequency: freq})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "digest run failed", nil)
		return
	}

	c.JSON(http.StatusOK, digestRunResponse{
		Frequency: freq.String(),
		Processed: result.Processed,
		Sent:      result.Sent,
		Skipped:   result.Skipped,
		Failed:    result.Failed,
	})
}
