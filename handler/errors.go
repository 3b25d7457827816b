package handler

import (
	"errors"
	"log"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase errors onto HTTP responses. A partial cascade
// failure gets its own shape so clients can tell "retry this delete" apart
// from "nothing happened".
func respondError(c *gin.Context, err error) {
	var partial *usecase.PartialDeleteError
	switch {
	case errors.As(err, &partial):
		log.Printf("Partial delete: %v", partial)
		utils.TrackError("cascade", "partial_delete")
		utils.BadGateway(c, "Delete incomplete, retry to finish",
			dto.DeleteResponse{Deleted: false, Steps: partial.Completed})
	case errors.Is(err, usecase.ErrValidation):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		utils.NotFound(c, "Not found")
	case errors.Is(err, usecase.ErrNotAuthorized):
		utils.Forbidden(c, "You do not own this resource")
	case errors.Is(err, usecase.ErrDuplicateUser):
		utils.Conflict(c, "Username already exists")
	case errors.Is(err, usecase.ErrUpstream):
		log.Printf("Upstream failure: %v", err)
		utils.TrackError("upstream", "dependency_failed")
		utils.BadGateway(c, "Upstream service failure")
	default:
		log.Printf("Unhandled error: %v", err)
		utils.InternalError(c, "Internal server error")
	}
}

// topicIDParam reads the optional topic_id query parameter that addresses a
// content scope. Absent means the General scope.
func topicIDParam(c *gin.Context) *string {
	topicID := c.Query("topic_id")
	if topicID == "" {
		return nil
	}
	return &topicID
}
