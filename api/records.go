package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/RhNu/nai-codex/db"
)

const (
	defaultRecentLimit = 50
	maxRecentLimit     = 200
)

func (service *Service) listRecentRecords(ctx *gin.Context) {
	limit := int64(defaultRecentLimit)

	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			field := ErrorField{"limit", fmt.Sprintf("invalid limit: %q", raw)}
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, field))
			return
		}
		limit = min(parsed, maxRecentLimit)
	}

	records, err := service.store.ListRecentGenerationRecords(ctx, int32(limit))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, records)
}

func (service *Service) getRecord(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	record, err := service.store.GetGenerationRecord(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err := fmt.Errorf("record with id [%s] not found", id)
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// deleteRecord drops the history row and its image files. A file that is
// already gone (archived day) is not an error.
func (service *Service) deleteRecord(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	record, err := service.store.DeleteGenerationRecord(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err := fmt.Errorf("record with id [%s] not found", id)
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	service.removeRecordFiles(record)

	ctx.JSON(http.StatusOK, record)
}

type DeleteRecordsBatchRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

type DeleteRecordsBatchResponse struct {
	Deleted int `json:"deleted"`
}

// deleteRecordsBatch removes several records and their files. Records that
// no longer exist are skipped, not errors.
func (service *Service) deleteRecordsBatch(ctx *gin.Context) {
	var req DeleteRecordsBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	deleted := 0
	for _, id := range req.IDs {
		record, err := service.store.DeleteGenerationRecord(ctx, id)
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
			return
		}

		service.removeRecordFiles(record)
		deleted++
	}

	ctx.JSON(http.StatusOK, DeleteRecordsBatchResponse{Deleted: deleted})
}

func (service *Service) removeRecordFiles(record db.GenerationRecord) {
	for _, img := range record.Images {
		if err := service.gallery.RemoveImage(img.Path); err != nil {
			log.Error().Err(err).Str("path", img.Path).Msg("failed to remove record image")
		}
	}
}
