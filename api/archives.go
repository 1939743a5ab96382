package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RhNu/nai-codex/gallery"
)

var errArchiveRunInProgress = errors.New("an archive run is already in progress")

func (service *Service) listArchives(ctx *gin.Context) {
	archives, err := service.archives.ListArchives()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, archives)
}

func (service *Service) listArchivableDates(ctx *gin.Context) {
	dates, err := service.archives.ListArchivableDates()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, dates)
}

// createArchives zips every past day folder. Only one run at a time: a
// second request while zipping gets 409.
func (service *Service) createArchives(ctx *gin.Context) {
	if !service.archiveInFlight.CompareAndSwap(false, true) {
		ctx.JSON(http.StatusConflict, NewErrorResponse(errArchiveRunInProgress))
		return
	}
	defer service.archiveInFlight.Store(false)

	result, err := service.archives.CreateArchives(ctx)
	if err != nil {
		if errors.Is(err, gallery.ErrNothingToArchive) {
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

type CreateArchivesForDatesRequest struct {
	Dates []string `json:"dates" binding:"required,min=1"`
}

func (service *Service) createArchivesForDates(ctx *gin.Context) {
	var req CreateArchivesForDatesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if !service.archiveInFlight.CompareAndSwap(false, true) {
		ctx.JSON(http.StatusConflict, NewErrorResponse(errArchiveRunInProgress))
		return
	}
	defer service.archiveInFlight.Store(false)

	result, err := service.archives.CreateArchivesForDates(ctx, req.Dates)
	if err != nil {
		if errors.Is(err, gallery.ErrNothingToArchive) || errors.Is(err, gallery.ErrInvalidArchiveDate) {
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (service *Service) deleteArchive(ctx *gin.Context) {
	name := ctx.Param("name")

	deleted, err := service.archives.DeleteArchive(name)
	if err != nil {
		if errors.Is(err, gallery.ErrInvalidArchiveName) {
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, NewErrorResponse(gallery.ErrArchiveNotFound))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (service *Service) downloadArchive(ctx *gin.Context) {
	name := ctx.Param("name")

	path, err := service.archives.ArchivePath(name)
	if err != nil {
		switch {
		case errors.Is(err, gallery.ErrInvalidArchiveName):
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		case errors.Is(err, gallery.ErrArchiveNotFound):
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		}
		return
	}

	ctx.FileAttachment(path, name)
}
