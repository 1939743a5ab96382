package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uuidParam parses a uuid path parameter, aborting with 400 on garbage.
// The bool reports whether the handler may proceed.
func uuidParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	raw := ctx.Param(name)

	id, err := uuid.Parse(raw)
	if err != nil {
		field := ErrorField{name, fmt.Sprintf("invalid %s: %q", name, raw)}
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidID, field))
		return uuid.Nil, false
	}

	return id, true
}
