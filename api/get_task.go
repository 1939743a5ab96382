package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RhNu/nai-codex/taskstore"
)

func (service *Service) getTask(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	status, err := service.queue.Status(ctx, id)
	if err != nil {
		if errors.Is(err, taskstore.ErrStatusNotFound) {
			err := fmt.Errorf("task with id [%s] not found", id)
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, status)
}
