package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func ListSubtopicsHandler(c *gin.Context, hierarchy *usecase.HierarchyService) {
	userID := c.GetString("user_id")

	subtopics, err := hierarchy.ListSubtopics(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"subtopics": subtopics})
}

func CreateSubtopicHandler(c *gin.Context, hierarchy *usecase.HierarchyService) {
	userID := c.GetString("user_id")

	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	subtopic, err := hierarchy.CreateSubtopic(c.Request.Context(), userID, c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, subtopic)
}
