package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RhNu/nai-codex/db"
)

func (service *Service) listSnippets(ctx *gin.Context) {
	snippets, err := service.store.ListSnippets(ctx, db.ListSnippetsParams{
		Query:    ctx.Query("query"),
		Category: ctx.Query("category"),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, snippets)
}
