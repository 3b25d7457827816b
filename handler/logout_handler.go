package handler

import (
	"log"
	"strings"

	"main/repository"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func LogoutHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	accessToken := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	// The body is optional; logout without it only kills the access token
	_ = c.ShouldBindJSON(&body)

	if err := services.BlacklistTokens(accessToken, body.RefreshToken); err != nil {
		log.Printf("Failed to blacklist tokens: %v", err)
		utils.InternalError(c, "Failed to log out")
		return
	}

	if sessionID, err := c.Cookie("session_id"); err == nil && sessionID != "" {
		if err := sessionRepo.EndSession(sessionID); err != nil {
			log.Printf("Failed to end session %s: %v", sessionID, err)
		}
		c.SetCookie("session_id", "", -1, "/", "", true, true)
	}

	utils.Success(c, gin.H{"message": "Logged out successfully"})
}
