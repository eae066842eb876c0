// Package mcp serves the tool registry over the Model Context Protocol
// (JSON-RPC 2.0 over HTTP POST).
package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jumptake/backend/tools"
)

const (
	jsonRPCVersion  = "2.0"
	protocolVersion = "2024-11-05"
	serverName      = "jumptake-backend"
)

// JSON-RPC error codes
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// Server answers MCP requests from external agents.
type Server struct {
	registry *tools.ToolRegistry
	version  string
	logger   *zap.Logger
	methods  map[string]method
}

type method func(ctx context.Context, params json.RawMessage) (interface{}, *MCPError)

func NewServer(registry *tools.ToolRegistry, version string, log *zap.Logger) *Server {
	s := &Server{
		registry: registry,
		version:  version,
		logger:   log.Named("mcp"),
	}
	s.methods = map[string]method{
		"initialize": s.initialize,
		"tools/list": s.listTools,
		"tools/call": s.callTool,
	}
	return s
}

// MCPRequest is a JSON-RPC request.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse carries either Result or Error.
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type InitializeResult struct {
	ProtocolVersion string                 `json:"protocolVersion"`
	Capabilities    map[string]interface{} `json:"capabilities"`
	ServerInfo      ServerInfo             `json:"serverInfo"`
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type ToolsListResult struct {
	Tools []tools.Definition `json:"tools"`
}

type ToolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolCallResult wraps the tool output as a single text content item.
type ToolCallResult struct {
	Content []ContentItem `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// RegisterRoutes registers MCP endpoints on the given router group
func (s *Server) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/mcp", s.HandleMCP)
	router.POST("/mcp/tools/list", s.HandleToolsList)
	router.POST("/mcp/tools/call", s.HandleToolsCall)
	router.GET("/tools", s.GetTools)
}

// GetTools returns available MCP tools
// @Summary List available tools
// @Description Get a list of all MCP tools for AI agents
// @Tags mcp
// @Produce json
// @Success 200 {object} ToolsListResult "List of tools"
// @Router /tools [get]
func (s *Server) GetTools(c *gin.Context) {
	c.JSON(http.StatusOK, ToolsListResult{Tools: s.registry.Definitions()})
}

// HandleMCP dispatches a JSON-RPC request. Protocol errors are still
// answered with HTTP 200.
func (s *Server) HandleMCP(c *gin.Context) {
	var req MCPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.reply(c, nil, nil, &MCPError{Code: codeParseError, Message: "Parse error", Data: err.Error()})
		return
	}

	m, ok := s.methods[req.Method]
	if !ok {
		s.reply(c, req.ID, nil, &MCPError{Code: codeMethodNotFound, Message: "Method not found"})
		return
	}

	result, rpcErr := m(c.Request.Context(), req.Params)
	s.reply(c, req.ID, result, rpcErr)
}

// HandleToolsList handles POST /mcp/tools/list
func (s *Server) HandleToolsList(c *gin.Context) {
	c.JSON(http.StatusOK, ToolsListResult{Tools: s.registry.Definitions()})
}

// HandleToolsCall handles POST /mcp/tools/call
func (s *Server) HandleToolsCall(c *gin.Context) {
	var params ToolCallParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "code": http.StatusBadRequest})
		return
	}
	c.JSON(http.StatusOK, s.execute(c.Request.Context(), params))
}

func (s *Server) initialize(context.Context, json.RawMessage) (interface{}, *MCPError) {
	return InitializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities:    map[string]interface{}{"tools": map[string]interface{}{}},
		ServerInfo:      ServerInfo{Name: serverName, Version: s.version},
	}, nil
}

func (s *Server) listTools(context.Context, json.RawMessage) (interface{}, *MCPError) {
	return ToolsListResult{Tools: s.registry.Definitions()}, nil
}

func (s *Server) callTool(ctx context.Context, raw json.RawMessage) (interface{}, *MCPError) {
	var params ToolCallParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, &MCPError{Code: codeInvalidParams, Message: "Invalid params", Data: err.Error()}
	}
	return s.execute(ctx, params), nil
}

// execute runs a tool. Failures become an isError result, not a JSON-RPC
// error, so agents can read the message.
func (s *Server) execute(ctx context.Context, params ToolCallParams) ToolCallResult {
	start := time.Now()
	out, err := s.registry.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", zap.String("tool", params.Name), zap.Error(err))
		return ToolCallResult{Content: []ContentItem{{Type: "text", Text: err.Error()}}, IsError: true}
	}

	s.logger.Info("tool executed", zap.String("tool", params.Name), zap.Duration("took", time.Since(start)))
	return ToolCallResult{Content: []ContentItem{{Type: "text", Text: string(out)}}}
}

func (s *Server) reply(c *gin.Context, id interface{}, result interface{}, rpcErr *MCPError) {
	resp := MCPResponse{JSONRPC: jsonRPCVersion, ID: id}
	if rpcErr != nil {
		resp.Error = rpcErr
	} else {
		resp.Result = result
	}
	c.JSON(http.StatusOK, resp)
}
