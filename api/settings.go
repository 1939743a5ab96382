package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RhNu/nai-codex/db"
)

var errNoSavedSettings = errors.New("no saved generation settings")

func (service *Service) getGenerationSettings(ctx *gin.Context) {
	settings, ok, err := service.store.LoadGenerationSettings(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	if !ok {
		ctx.JSON(http.StatusNotFound, NewErrorResponse(errNoSavedSettings))
		return
	}

	ctx.JSON(http.StatusOK, settings)
}

func (service *Service) putGenerationSettings(ctx *gin.Context) {
	var settings db.GenerationSettings
	if err := ctx.ShouldBindJSON(&settings); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if err := service.store.SaveGenerationSettings(ctx, settings); err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, settings)
}
