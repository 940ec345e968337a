package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/aretw0/canopy/pkg/adapters/http"
	"github.com/aretw0/canopy/pkg/domain"
)

type stubInspector struct {
	info domain.TreeInfo
}

func (s stubInspector) Describe() domain.TreeInfo { return s.info }
func (s stubInspector) Height() int               { return s.info.Height }

func newStubInspector() stubInspector {
	return stubInspector{info: domain.TreeInfo{
		Root:   "root",
		Height: 3,
		Nodes: []domain.NodeInfo{
			{ID: "root", Children: []domain.ID{"grounded"}, Initial: "grounded", Depth: 1},
			{ID: "grounded", Parent: "root", Children: []domain.ID{"idle", "move"}, Initial: "idle", Depth: 2},
			{ID: "idle", Parent: "grounded", Depth: 3},
			{ID: "move", Parent: "grounded", Depth: 3},
		},
	}}
}

func stubActors() map[string][]domain.ID {
	return map[string][]domain.ID{
		"player-1": {"root", "grounded", "idle"},
	}
}

func TestHandler_Tree(t *testing.T) {
	handler := httpadapter.NewHandler(newStubInspector())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tree", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var info domain.TreeInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, domain.ID("root"), info.Root)
	assert.Equal(t, 3, info.Height)
	assert.Len(t, info.Nodes, 4)
}

func TestHandler_Graph(t *testing.T) {
	handler := httpadapter.NewHandler(newStubInspector(),
		httpadapter.WithActorSource(stubActors))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graph", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "graph TD")
	assert.NotContains(t, rec.Body.String(), "class", "no overlay without an actor")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graph?actor=player-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "active")
}

func TestHandler_Actors(t *testing.T) {
	handler := httpadapter.NewHandler(newStubInspector(),
		httpadapter.WithActorSource(stubActors))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/actors", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var actors map[string][]domain.ID
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actors))
	assert.Equal(t, []domain.ID{"root", "grounded", "idle"}, actors["player-1"])
}

func TestHandler_Actor(t *testing.T) {
	handler := httpadapter.NewHandler(newStubInspector(),
		httpadapter.WithActorSource(stubActors))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/actors/player-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		ID     string      `json:"id"`
		Path   []domain.ID `json:"path"`
		Height int         `json:"height"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "player-1", body.ID)
	assert.Equal(t, []domain.ID{"root", "grounded", "idle"}, body.Path)
	assert.Equal(t, 3, body.Height)
}

func TestHandler_ActorNotFound(t *testing.T) {
	handler := httpadapter.NewHandler(newStubInspector(),
		httpadapter.WithActorSource(stubActors))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/actors/ghost", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_NoActorSource(t *testing.T) {
	handler := httpadapter.NewHandler(newStubInspector())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/actors", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_CORS(t *testing.T) {
	handler := httpadapter.NewHandler(newStubInspector())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/tree", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
