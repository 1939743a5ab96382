package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/RhNu/nai-codex/db"
	"github.com/RhNu/nai-codex/prompt"
	"github.com/RhNu/nai-codex/queue"
)

type CreateTaskRequest struct {
	Prompt         string                  `json:"prompt" binding:"required"`
	NegativePrompt string                  `json:"negative_prompt"`
	Count          uint32                  `json:"count" binding:"lte=16"`
	Params         *queue.GenerationParams `json:"params"`
	MainPresetID   *uuid.UUID              `json:"main_preset_id"`
	CharacterSlots []queue.CharacterSlot   `json:"character_slots" binding:"max=6"`
}

type CreateTaskResponse struct {
	TaskID uuid.UUID `json:"task_id"`
}

// createTask validates the request, snapshots it as the last generation
// settings and enqueues the task. Generation itself is asynchronous; the
// client polls GET /tasks/:id.
func (service *Service) createTask(ctx *gin.Context) {
	var req CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	params := queue.DefaultGenerationParams()
	if req.Params != nil {
		params = *req.Params
	}

	var mainPreset prompt.PresetSettings
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
		mainPreset = preset.Settings()
	}

	task := queue.Task{
		ID:             uuid.New(),
		RawPrompt:      req.Prompt,
		NegativePrompt: req.NegativePrompt,
		Count:          req.Count,
		Params:         params,
		MainPreset:     mainPreset,
		CharacterSlots: req.CharacterSlots,
	}

	service.saveSettingsSnapshot(ctx, req, params)

	if err := service.queue.Submit(ctx, task); err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusAccepted, CreateTaskResponse{TaskID: task.ID})
}

// saveSettingsSnapshot persists the submitted form so the editor can restore
// it next launch. Best effort: a failed snapshot never blocks the task.
func (service *Service) saveSettingsSnapshot(ctx *gin.Context, req CreateTaskRequest, params queue.GenerationParams) {
	rawParams, err := json.Marshal(params)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode generation params snapshot")
		return
	}

	slots := make([]prompt.CharacterSlot, len(req.CharacterSlots))
	for i, slot := range req.CharacterSlots {
		slots[i] = prompt.CharacterSlot{
			Prompt:   slot.Prompt,
			UC:       slot.UC,
			Enabled:  slot.Enabled,
			PresetID: slot.PresetID,
		}
	}

	settings := db.GenerationSettings{
		Prompt:         req.Prompt,
		NegativePrompt: req.NegativePrompt,
		Count:          req.Count,
		Params:         rawParams,
		CharacterSlots: slots,
		MainPresetID:   req.MainPresetID,
	}

	if err := service.store.SaveGenerationSettings(ctx, settings); err != nil {
		log.Error().Err(err).Msg("failed to save generation settings snapshot")
	}
}
