package mcp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jumptake/backend/tools"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	registry := tools.NewToolRegistry()
	registry.Register(tools.NewScoreSkillsTool())

	r := gin.New()
	NewServer(registry, "test", zap.NewNop()).RegisterRoutes(r.Group("/api"))
	return r
}

func rpc(t *testing.T, r http.Handler, body string) MCPResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/mcp", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp MCPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestInitializeAndList(t *testing.T) {
	r := newTestRouter()

	resp := rpc(t, r, `{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	require.Nil(t, resp.Error)
	assert.Contains(t, mustJSON(t, resp.Result), protocolVersion)

	resp = rpc(t, r, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	require.Nil(t, resp.Error)
	assert.Contains(t, mustJSON(t, resp.Result), "score_skills")
}

func TestToolsCall(t *testing.T) {
	r := newTestRouter()

	resp := rpc(t, r, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"score_skills",`+
		`"arguments":{"candidate_skills":["Go"],"job_skills":["go"]}}}`)
	require.Nil(t, resp.Error)
	assert.Contains(t, mustJSON(t, resp.Result), `\"score\":1`)

	resp = rpc(t, r, `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"nope"}}`)
	require.Nil(t, resp.Error)
	assert.Contains(t, mustJSON(t, resp.Result), `"isError":true`)

	resp = rpc(t, r, `{"jsonrpc":"2.0","id":5,"method":"resources/list"}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32601, resp.Error.Code)
}

func TestGetTools(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tools", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "score_skills")
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestHTTPToolsCall(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/mcp/tools/call",
		bytes.NewBufferString(`{"name":"score_skills","arguments":{"candidate_skills":["SQL"],"job_skills":["sql"]}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res ToolCallResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	assert.Contains(t, res.Content[0].Text, `"matched_skills":["SQL"]`)

	req = httptest.NewRequest(http.MethodPost, "/api/mcp/tools/call", bytes.NewBufferString(`not json`))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
