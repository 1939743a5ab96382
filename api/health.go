package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (service *Service) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"environment": service.config.Environment,
	})
}
