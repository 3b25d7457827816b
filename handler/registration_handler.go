package handler

import (
	"errors"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := userService.CreateUser(c.Request.Context(), &user); err != nil {
		if errors.Is(err, usecase.ErrDuplicateUser) {
			utils.TrackAuthAttempt("failure", "duplicate_username")
		} else {
			utils.TrackAuthAttempt("failure", "registration")
		}
		respondError(c, err)
		return
	}

	utils.TrackAuthAttempt("success", "registration")
	utils.Created(c, gin.H{
		"user_id":  user.UserID,
		"username": user.Username,
	})
}
