package handler

import (
	"log"

	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetActiveSessionsHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID := c.GetString("user_id")

	sessions, err := sessionRepo.GetUserActiveSessions(userID)
	if err != nil {
		log.Printf("Failed to list sessions for %s: %v", userID, err)
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}

	utils.Success(c, gin.H{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

func LogoutAllSessionsHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID := c.GetString("user_id")

	count, err := sessionRepo.EndAllUserSessions(userID)
	if err != nil {
		log.Printf("Failed to end sessions for %s: %v", userID, err)
		utils.InternalError(c, "Failed to end sessions")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)
	utils.Success(c, gin.H{
		"message":        "All sessions ended",
		"sessions_ended": count,
	})
}
