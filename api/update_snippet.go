package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/RhNu/nai-codex/db"
	"github.com/RhNu/nai-codex/util"
)

type UpdateSnippetRequest struct {
	Category    string   `json:"category" binding:"max=100"`
	Tags        []string `json:"tags"`
	Description *string  `json:"description"`
	Content     string   `json:"content" binding:"required"`
}

// updateSnippet changes everything but the name; renames go through the
// rename endpoint so existing references get rewritten.
func (service *Service) updateSnippet(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	var req UpdateSnippetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	snippet, err := service.store.UpdateSnippet(ctx, db.UpdateSnippetParams{
		ID:          id,
		Category:    req.Category,
		Tags:        req.Tags,
		Description: util.StringToPgxText(req.Description),
		Content:     req.Content,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err := fmt.Errorf("snippet with id [%s] not found", id)
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, snippet)
}
