package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// GetNoteHandler returns the note of the addressed scope. A scope that has
// no note yet is a normal empty result, not a 404; the scope itself always
// exists once its topic does.
func GetNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	note, err := notesService.GetNote(c.Request.Context(), userID, topicIDParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if note == nil {
		utils.Success(c, gin.H{"has_note": false, "note": nil})
		return
	}
	utils.Success(c, gin.H{"has_note": true, "note": note})
}

func SaveNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.UpsertNote(c.Request.Context(), userID, topicIDParam(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, note)
}
