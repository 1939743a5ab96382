package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/RhNu/nai-codex/db"
	mockdb "github.com/RhNu/nai-codex/db/mock"
)

func TestGetSnippet(t *testing.T) {
	snippet := randomSnippet()

	testCases := []struct {
		name          string
		id            string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "InvalidID",
			id:   "not-a-uuid",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetSnippet(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "NotFound",
			id:   snippet.ID.String(),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetSnippet(gomock.Any(), snippet.ID).Times(1).Return(db.Snippet{}, pgx.ErrNoRows)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "StoreError",
			id:   snippet.ID.String(),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetSnippet(gomock.Any(), snippet.ID).Times(1).Return(db.Snippet{}, pgx.ErrTxClosed)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name: "OK",
			id:   snippet.ID.String(),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetSnippet(gomock.Any(), snippet.ID).Times(1).Return(snippet, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			service := newTestService(t, store, nil, nil)
			url := fmt.Sprintf("/api/snippets/%s", tc.id)
			recorder := serveJSON(t, service, http.MethodGet, url, nil)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestDeleteSnippet(t *testing.T) {
	id := uuid.New()

	testCases := []struct {
		name         string
		buildStubs   func(store *mockdb.MockStore)
		expectedCode int
	}{
		{
			name: "OK",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().DeleteSnippet(gomock.Any(), id).Times(1).Return(true, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "NotFound",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().DeleteSnippet(gomock.Any(), id).Times(1).Return(false, nil)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			service := newTestService(t, store, nil, nil)
			url := fmt.Sprintf("/api/snippets/%s", id)
			recorder := serveJSON(t, service, http.MethodDelete, url, nil)
			require.Equal(t, tc.expectedCode, recorder.Code)
		})
	}
}

func TestListSnippets(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().ListSnippets(gomock.Any(), db.ListSnippetsParams{Query: "hair", Category: "style"}).
		Times(1).Return([]db.Snippet{{Name: "blue-hair"}}, nil)

	service := newTestService(t, store, nil, nil)
	recorder := serveJSON(t, service, http.MethodGet, "/api/snippets?query=hair&category=style", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
}
