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

	"github.com/aipsms/ai-engine/tools"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	registry := tools.NewToolRegistry()
	registry.Register(tools.NewAnalyzeSkillGapTool())

	r := gin.New()
	NewServer(registry, "test-engine", "0.0.1", nil).RegisterRoutes(r.Group(""))
	return r
}

func post(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeRPC(t *testing.T, w *httptest.ResponseRecorder) (MCPResponse, json.RawMessage) {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code)

	var raw struct {
		MCPResponse
		Result json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	return raw.MCPResponse, raw.Result
}

func TestHandleMCPInitialize(t *testing.T) {
	resp, result := decodeRPC(t, post(t, newTestRouter(), "/mcp", `{"jsonrpc":"2.0","id":1,"method":"initialize"}`))
	require.Nil(t, resp.Error)

	var init InitializeResult
	require.NoError(t, json.Unmarshal(result, &init))
	assert.Equal(t, protocolVersion, init.ProtocolVersion)
	assert.Equal(t, ServerInfo{Name: "test-engine", Version: "0.0.1"}, init.ServerInfo)
}

func TestHandleMCPToolsList(t *testing.T) {
	resp, result := decodeRPC(t, post(t, newTestRouter(), "/mcp", `{"jsonrpc":"2.0","id":"a","method":"tools/list"}`))
	require.Nil(t, resp.Error)
	assert.Equal(t, "a", resp.ID)

	var list ToolsListResult
	require.NoError(t, json.Unmarshal(result, &list))
	require.Len(t, list.Tools, 1)
	assert.Equal(t, "analyze_skill_gap", list.Tools[0].Name)
}

func TestHandleMCPToolsCall(t *testing.T) {
	body := `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"analyze_skill_gap","arguments":{"resume_skills":["Go"],"required_skills":["go","k8s"]}}}`
	resp, result := decodeRPC(t, post(t, newTestRouter(), "/mcp", body))
	require.Nil(t, resp.Error)

	var call ToolCallResult
	require.NoError(t, json.Unmarshal(result, &call))
	require.Len(t, call.Content, 1)
	assert.False(t, call.IsError)

	var envelope tools.ToolResult
	require.NoError(t, json.Unmarshal([]byte(call.Content[0].Text), &envelope))
	assert.True(t, envelope.Success)
	assert.JSONEq(t, `{"missing_skills":["k8s"],"matching_skills":["go"],"match_percentage":50}`, string(envelope.Data))
}

func TestHandleMCPErrors(t *testing.T) {
	r := newTestRouter()

	resp, _ := decodeRPC(t, post(t, r, "/mcp", `{not json`))
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32700, resp.Error.Code)

	resp, _ = decodeRPC(t, post(t, r, "/mcp", `{"jsonrpc":"2.0","id":3,"method":"resources/list"}`))
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32601, resp.Error.Code)

	resp, result := decodeRPC(t, post(t, r, "/mcp", `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"missing"}}`))
	require.Nil(t, resp.Error)
	var call ToolCallResult
	require.NoError(t, json.Unmarshal(result, &call))
	assert.True(t, call.IsError)
	assert.Contains(t, call.Content[0].Text, "tool not found")
}

func TestHandleToolsCallDirect(t *testing.T) {
	r := newTestRouter()

	w := post(t, r, "/mcp/tools/call", `{"name":"analyze_skill_gap","arguments":{"resume_skills":[],"required_skills":[]}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var call ToolCallResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &call))
	assert.False(t, call.IsError)

	w = post(t, r, "/mcp/tools/call", `[]`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(t, r, "/mcp/tools/list", ``)
	assert.Equal(t, http.StatusOK, w.Code)
}
