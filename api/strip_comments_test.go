package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdb "github.com/RhNu/nai-codex/db/mock"
)

func TestStripComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)
	service := newTestService(t, store, nil, nil)

	recorder := serveJSON(t, service, http.MethodPost, "/api/prompt/strip-comments", StripCommentsRequest{
		Text: "1girl, //wip//, blue hair",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp StripCommentsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Equal(t, "1girl, , blue hair", resp.Text)
}

func TestStripCommentsUnclosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)
	service := newTestService(t, store, nil, nil)

	recorder := serveJSON(t, service, http.MethodPost, "/api/prompt/strip-comments", StripCommentsRequest{
		Text: "1girl, //oops",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	resp, err := extractErrorFromBuffer(recorder.Body)
	require.NoError(t, err)
	require.Len(t, resp.Fields, 1)
	require.Equal(t, "text", resp.Fields[0].FieldName)
	require.Contains(t, resp.Fields[0].ErrorMessage, "position 7")
}
