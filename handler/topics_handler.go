package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func ListTopicsHandler(c *gin.Context, hierarchy *usecase.HierarchyService) {
	userID := c.GetString("user_id")

	topics, err := hierarchy.ListTopics(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"topics": topics})
}

func CreateTopicHandler(c *gin.Context, hierarchy *usecase.HierarchyService) {
	userID := c.GetString("user_id")

	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	topic, err := hierarchy.CreateTopic(c.Request.Context(), userID, c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, topic)
}

func RenameTopicHandler(c *gin.Context, hierarchy *usecase.HierarchyService) {
	userID := c.GetString("user_id")

	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := hierarchy.RenameTopic(c.Request.Context(), userID, c.Param("id"), req.Name); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Topic renamed"})
}

func DeleteTopicHandler(c *gin.Context, hierarchy *usecase.HierarchyService) {
	userID := c.GetString("user_id")

	if err := hierarchy.DeleteTopic(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.DeleteResponse{Deleted: true})
}
