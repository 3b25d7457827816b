package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func ListSubjectsHandler(c *gin.Context, hierarchy *usecase.HierarchyService) {
	userID := c.GetString("user_id")

	subjects, err := hierarchy.ListSubjects(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"subjects": subjects})
}

func CreateSubjectHandler(c *gin.Context, hierarchy *usecase.HierarchyService) {
	userID := c.GetString("user_id")

	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	subject, err := hierarchy.CreateSubject(c.Request.Context(), userID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, subject)
}

func RenameSubjectHandler(c *gin.Context, hierarchy *usecase.HierarchyService) {
	userID := c.GetString("user_id")

	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := hierarchy.RenameSubject(c.Request.Context(), userID, c.Param("id"), req.Name); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Subject renamed"})
}

func DeleteSubjectHandler(c *gin.Context, hierarchy *usecase.HierarchyService) {
	userID := c.GetString("user_id")

	if err := hierarchy.DeleteSubject(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.DeleteResponse{Deleted: true})
}
