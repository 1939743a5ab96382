package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RhNu/nai-codex/prompt"
)

type FormatPromptRequest struct {
	Text string `json:"text"`
}

type FormatPromptResponse struct {
	Text string `json:"text"`
}

func (service *Service) formatPrompt(ctx *gin.Context) {
	var req FormatPromptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	ctx.JSON(http.StatusOK, FormatPromptResponse{Text: prompt.Format(req.Text)})
}
