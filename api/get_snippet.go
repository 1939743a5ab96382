package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

func (service *Service) getSnippet(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	snippet, err := service.store.GetSnippet(ctx, id)
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
