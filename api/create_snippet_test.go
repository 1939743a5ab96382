package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/RhNu/nai-codex/db"
	mockdb "github.com/RhNu/nai-codex/db/mock"
)

func TestCreateSnippet(t *testing.T) {
	snippet := db.Snippet{
		ID:       uuid.New(),
		Name:     "quality",
		Category: "style",
		Tags:     []string{"base"},
		Content:  "best quality, amazing quality",
	}

	testCases := []struct {
		name          string
		body          CreateSnippetRequest
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: CreateSnippetRequest{
				Name:     "quality",
				Category: "style",
				Tags:     []string{"base"},
				Content:  "best quality, amazing quality",
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateSnippet(gomock.Any(), db.CreateSnippetParams{
					Name:     "quality",
					Category: "style",
					Tags:     []string{"base"},
					Content:  "best quality, amazing quality",
				}).Times(1).Return(snippet, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp db.Snippet
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				require.Equal(t, snippet.ID, resp.ID)
				require.Equal(t, "quality", resp.Name)
			},
		},
		{
			name: "MissingName",
			body: CreateSnippetRequest{Content: "something"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateSnippet(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				resp, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Len(t, resp.Fields, 1)
				require.Equal(t, "name", resp.Fields[0].FieldName)
			},
		},
		{
			name: "ForbiddenNameCharacters",
			body: CreateSnippetRequest{Name: "bad name", Content: "x"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateSnippet(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "NameTaken",
			body: CreateSnippetRequest{Name: "quality", Content: "x"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateSnippet(gomock.Any(), gomock.Any()).Times(1).
					Return(db.Snippet{}, db.ErrSnippetNameTaken)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			service := newTestService(t, store, nil, nil)
			recorder := serveJSON(t, service, http.MethodPost, "/api/snippets", tc.body)
			tc.checkResponse(t, recorder)
		})
	}
}
