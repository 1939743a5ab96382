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

type CreateMainPresetRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	PresetFields
}

type UpdateMainPresetRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	PresetFields
}

func (service *Service) listMainPresets(ctx *gin.Context) {
	presets, err := service.store.ListMainPresets(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, presets)
}

func (service *Service) createMainPreset(ctx *gin.Context) {
	var req CreateMainPresetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	preset, err := service.store.CreateMainPreset(ctx, db.CreateMainPresetParams{
		Name:        req.Name,
		Description: util.StringToPgxText(req.Description),
		Before:      util.StringToPgxText(req.Before),
		After:       util.StringToPgxText(req.After),
		Replace:     util.StringToPgxText(req.Replace),
		UCBefore:    util.StringToPgxText(req.UCBefore),
		UCAfter:     util.StringToPgxText(req.UCAfter),
		UCReplace:   util.StringToPgxText(req.UCReplace),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, preset)
}

func (service *Service) getMainPreset(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	preset, err := service.store.GetMainPreset(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err := fmt.Errorf("main preset with id [%s] not found", id)
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, preset)
}

func (service *Service) updateMainPreset(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	var req UpdateMainPresetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	preset, err := service.store.UpdateMainPreset(ctx, db.UpdateMainPresetParams{
		ID:          id,
		Name:        req.Name,
		Description: util.StringToPgxText(req.Description),
		Before:      util.StringToPgxText(req.Before),
		After:       util.StringToPgxText(req.After),
		Replace:     util.StringToPgxText(req.Replace),
		UCBefore:    util.StringToPgxText(req.UCBefore),
		UCAfter:     util.StringToPgxText(req.UCAfter),
		UCReplace:   util.StringToPgxText(req.UCReplace),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err := fmt.Errorf("main preset with id [%s] not found", id)
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, preset)
}

func (service *Service) deleteMainPreset(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	deleted, err := service.store.DeleteMainPreset(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	if !deleted {
		err := fmt.Errorf("main preset with id [%s] not found", id)
		ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
