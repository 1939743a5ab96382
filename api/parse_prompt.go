package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RhNu/nai-codex/prompt"
)

type ParsePromptRequest struct {
	Text string `json:"text"`
}

type ParsePromptResponse struct {
	Spans            []prompt.HighlightSpan `json:"spans"`
	UnclosedBraces   int                    `json:"unclosed_braces"`
	UnclosedBrackets int                    `json:"unclosed_brackets"`
	UnclosedWeight   bool                   `json:"unclosed_weight"`
}

// parsePrompt tokenizes the editor buffer into highlight spans plus the
// unclosed-group diagnostics. Any input parses; brokenness is reported in
// the counters, never as an error.
func (service *Service) parsePrompt(ctx *gin.Context) {
	var req ParsePromptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	result := prompt.Tokenize(req.Text)

	ctx.JSON(http.StatusOK, ParsePromptResponse{
		Spans:            prompt.HighlightSpans(req.Text),
		UnclosedBraces:   result.UnclosedBraces,
		UnclosedBrackets: result.UnclosedBrackets,
		UnclosedWeight:   result.UnclosedWeight,
	})
}
