package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/RhNu/nai-codex/db"
	mockdb "github.com/RhNu/nai-codex/db/mock"
	"github.com/RhNu/nai-codex/prompt"
	"github.com/RhNu/nai-codex/util"
)

func TestDryRunPrompt(t *testing.T) {
	presetID := uuid.New()
	after := "<snippet:quality>"
	mainPreset := db.MainPreset{
		ID:    presetID,
		Name:  "default",
		After: util.StringToPgxText(&after),
	}
	qualitySnippet := db.Snippet{
		ID:      uuid.New(),
		Name:    "quality",
		Content: "best quality, amazing quality",
	}

	testCases := []struct {
		name          string
		body          DryRunRequest
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: DryRunRequest{
				Prompt:         "masterpiece, 1girl",
				NegativePrompt: "lowres",
				MainPresetID:   &presetID,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetMainPreset(gomock.Any(), presetID).Times(1).Return(mainPreset, nil)
				store.EXPECT().GetSnippetByName(gomock.Any(), "quality").Times(1).Return(qualitySnippet, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp prompt.DryRunResult
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				require.Equal(t, "masterpiece, 1girl", resp.RawPositive)
				require.Equal(t, "masterpiece, 1girl, <snippet:quality>", resp.PositiveAfterPreset)
				require.Equal(t, "masterpiece, 1girl, best quality, amazing quality", resp.FinalPositive)
				require.Equal(t, "lowres", resp.FinalNegative)
			},
		},
		{
			name: "NoPreset",
			body: DryRunRequest{Prompt: "1girl"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetMainPreset(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp prompt.DryRunResult
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				require.Equal(t, "1girl", resp.FinalPositive)
			},
		},
		{
			name: "PresetNotFound",
			body: DryRunRequest{Prompt: "1girl", MainPresetID: &presetID},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetMainPreset(gomock.Any(), presetID).Times(1).Return(db.MainPreset{}, pgx.ErrNoRows)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "MissingSnippet",
			body: DryRunRequest{Prompt: "1girl, <snippet:nope>"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetSnippetByName(gomock.Any(), "nope").Times(1).Return(db.Snippet{}, pgx.ErrNoRows)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				resp, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Contains(t, resp.Error, "nope")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			service := newTestService(t, store, nil, nil)
			recorder := serveJSON(t, service, http.MethodPost, "/api/prompt/dry-run", tc.body)
			tc.checkResponse(t, recorder)
		})
	}
}
