package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RhNu/nai-codex/db"
	"github.com/RhNu/nai-codex/prompt"
	"github.com/RhNu/nai-codex/util"
)

type CreateSnippetRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Category    string   `json:"category" binding:"max=100"`
	Tags        []string `json:"tags"`
	Description *string  `json:"description"`
	Content     string   `json:"content" binding:"required"`
}

func (service *Service) createSnippet(ctx *gin.Context) {
	var req CreateSnippetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if err := prompt.ValidateSnippetName(req.Name); err != nil {
		field := ErrorField{"name", err.Error()}
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, field))
		return
	}

	snippet, err := service.store.CreateSnippet(ctx, db.CreateSnippetParams{
		Name:        req.Name,
		Category:    req.Category,
		Tags:        req.Tags,
		Description: util.StringToPgxText(req.Description),
		Content:     req.Content,
	})
	if err != nil {
		if errors.Is(err, db.ErrSnippetNameTaken) {
			ctx.JSON(http.StatusConflict, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, snippet)
}
