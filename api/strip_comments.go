package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RhNu/nai-codex/prompt"
)

type StripCommentsRequest struct {
	Text string `json:"text"`
}

type StripCommentsResponse struct {
	Text string `json:"text"`
}

// stripComments removes "//...//" comments. Unlike the tokenizer, stripping
// is strict: a trailing unterminated comment is a 400 with its position.
func (service *Service) stripComments(ctx *gin.Context) {
	var req StripCommentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	stripped, err := prompt.StripComments(req.Text)
	if err != nil {
		var unclosed *prompt.UnclosedCommentError
		if errors.As(err, &unclosed) {
			field := ErrorField{"text", fmt.Sprintf("unclosed comment starting at position %d", unclosed.Pos)}
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(err, field))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, StripCommentsResponse{Text: stripped})
}
