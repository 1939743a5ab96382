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

// PresetFields is the shared request shape of the six rewrite fields.
// Null and absent both mean "no rule"; empty strings are kept verbatim
// because the rewrite separators are whitespace-sensitive.
type PresetFields struct {
	Description *string `json:"description"`
	Before      *string `json:"before"`
	After       *string `json:"after"`
	Replace     *string `json:"replace"`
	UCBefore    *string `json:"uc_before"`
	UCAfter     *string `json:"uc_after"`
	UCReplace   *string `json:"uc_replace"`
}

type CreateCharacterPresetRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	PresetFields
}

func (service *Service) listCharacterPresets(ctx *gin.Context) {
	presets, err := service.store.ListCharacterPresets(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, presets)
}

func (service *Service) createCharacterPreset(ctx *gin.Context) {
	var req CreateCharacterPresetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	preset, err := service.store.CreateCharacterPreset(ctx, db.CreateCharacterPresetParams{
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

func (service *Service) getCharacterPreset(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	preset, err := service.store.GetCharacterPreset(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err := fmt.Errorf("character preset with id [%s] not found", id)
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, preset)
}

func (service *Service) updateCharacterPreset(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	var req PresetFields
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	preset, err := service.store.UpdateCharacterPreset(ctx, db.UpdateCharacterPresetParams{
		ID:          id,
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
			err := fmt.Errorf("character preset with id [%s] not found", id)
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, preset)
}

func (service *Service) deleteCharacterPreset(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	deleted, err := service.store.DeleteCharacterPreset(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	if !deleted {
		err := fmt.Errorf("character preset with id [%s] not found", id)
		ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

type RenameCharacterPresetRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

func (service *Service) renameCharacterPreset(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	var req RenameCharacterPresetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	preset, err := service.store.RenameCharacterPreset(ctx, id, req.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err := fmt.Errorf("character preset with id [%s] not found", id)
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, preset)
}
