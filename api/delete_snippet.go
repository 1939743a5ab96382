package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (service *Service) deleteSnippet(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	deleted, err := service.store.DeleteSnippet(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	if !deleted {
		err := fmt.Errorf("snippet with id [%s] not found", id)
		ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
