package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdb "github.com/RhNu/nai-codex/db/mock"
)

func TestParsePrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)
	service := newTestService(t, store, nil, nil)

	recorder := serveJSON(t, service, http.MethodPost, "/api/prompt/parse", ParsePromptRequest{
		Text: "{masterpiece}, 1.5::blue hair::, [sketch",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp ParsePromptResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	require.NotEmpty(t, resp.Spans)
	require.Equal(t, 0, resp.UnclosedBraces)
	require.Equal(t, 1, resp.UnclosedBrackets)
	require.False(t, resp.UnclosedWeight)

	// spans must tile the input exactly
	total := 0
	for _, span := range resp.Spans {
		require.Equal(t, total, span.Start)
		total = span.End
	}
	require.Equal(t, len("{masterpiece}, 1.5::blue hair::, [sketch"), total)
}

func TestParsePromptEmptyText(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)
	service := newTestService(t, store, nil, nil)

	recorder := serveJSON(t, service, http.MethodPost, "/api/prompt/parse", ParsePromptRequest{})
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp ParsePromptResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Empty(t, resp.Spans)
}

func TestParsePromptBadBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)
	service := newTestService(t, store, nil, nil)

	recorder := serveJSON(t, service, http.MethodPost, "/api/prompt/parse", "not an object")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}
