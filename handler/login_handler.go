package handler

import (
	"log"

	"main/dto"
	"main/middleware"
	"main/model"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func LoginHandler(c *gin.Context, userService *usecase.UserService, sessionRepo *repository.SessionRepo) {
	var loginReq model.LoginRequest
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid request body")
		return
	}

	user, err := userService.Authenticate(c.Request.Context(), loginReq.Username, loginReq.Password)
	if err != nil {
		utils.TrackAuthAttempt("failure", "invalid_credentials")
		utils.Unauthorized(c, "Invalid username or password")
		return
	}

	accessToken, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate token")
		return
	}
	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	if _, err := middleware.CreateSession(c, user.UserID, sessionRepo); err != nil {
		// The login still stands; session tracking is best effort
		log.Printf("Failed to create session for %s: %v", user.UserID, err)
	}

	utils.TrackAuthAttempt("success", "login")
	utils.Success(c, dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.UserID,
		Username:     user.Username,
	})
}
