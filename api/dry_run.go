package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/RhNu/nai-codex/prompt"
)

type DryRunRequest struct {
	Prompt         string                 `json:"prompt"`
	NegativePrompt string                 `json:"negative_prompt"`
	MainPresetID   *uuid.UUID             `json:"main_preset_id"`
	CharacterSlots []prompt.CharacterSlot `json:"character_slots"`
}

// dryRunPrompt runs the full prompt pipeline without generating anything and
// returns every intermediate stage for preview.
func (service *Service) dryRunPrompt(ctx *gin.Context) {
	var req DryRunRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	var main prompt.PresetSettings
	if req.MainPresetID != nil {
		preset, err := service.store.GetMainPreset(ctx, *req.MainPresetID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				err := fmt.Errorf("main preset with id [%s] not found", req.MainPresetID)
				ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
				return
			}

			ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
			return
		}
		main = preset.Settings()
	}

	result, err := service.processor.DryRun(ctx, req.Prompt, req.NegativePrompt, main, req.CharacterSlots)
	if err != nil {
		var notFound *prompt.SnippetNotFoundError
		if errors.As(err, &notFound) {
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}
