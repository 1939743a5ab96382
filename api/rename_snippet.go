package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/RhNu/nai-codex/db"
	"github.com/RhNu/nai-codex/prompt"
)

type RenameSnippetRequest struct {
	NewName string `json:"new_name" binding:"required,max=100"`
}

// renameSnippet renames and rewrites every "<snippet:OLD>" reference stored
// in presets and the saved generation settings, in one transaction.
func (service *Service) renameSnippet(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	var req RenameSnippetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	result, err := service.store.RenameSnippetTx(ctx, db.RenameSnippetTxParams{
		ID:      id,
		NewName: req.NewName,
	})
	if err != nil {
		switch {
		case errors.Is(err, prompt.ErrInvalidSnippetName):
			field := ErrorField{"new_name", err.Error()}
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, field))
		case errors.Is(err, db.ErrSnippetNameTaken):
			ctx.JSON(http.StatusConflict, NewErrorResponse(err))
		case errors.Is(err, pgx.ErrNoRows):
			err := fmt.Errorf("snippet with id [%s] not found", id)
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}
