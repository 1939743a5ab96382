package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RhNu/nai-codex/nai"
)

type QuotaResponse struct {
	Anlas uint64 `json:"anlas"`
}

func (service *Service) inquireQuota(ctx *gin.Context) {
	anlas, err := service.quota.InquireQuota(ctx)
	if err != nil {
		var badStatus *nai.BadStatusError
		if errors.As(err, &badStatus) {
			ctx.JSON(http.StatusBadGateway, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, QuotaResponse{Anlas: anlas})
}
