// Package mcp serves the tool registry over a minimal JSON-RPC 2.0 surface
// compatible with Model Context Protocol clients.
package mcp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/myjobmatch/jobfeed/logger"
	"github.com/myjobmatch/jobfeed/tools"
)

const (
	protocolVersion = "2024-11-05"
	serverName      = "jobfeed"
	serverVersion   = "1.0.0"
)

// JSON-RPC error codes
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// Server exposes a tool registry to external agents
type Server struct {
	registry *tools.Registry
}

// NewServer creates a new MCP server
func NewServer(registry *tools.Registry) *Server {
	return &Server{registry: registry}
}

// Request is an incoming JSON-RPC request
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a JSON-RPC response
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error is a JSON-RPC error object
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ToolsListResult is the result of tools/list
type ToolsListResult struct {
	Tools []tools.Definition `json:"tools"`
}

// ToolCallParams are the parameters of tools/call
type ToolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolCallResult is the result of tools/call
type ToolCallResult struct {
	Content []ContentItem `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// ContentItem is one piece of tool output
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type initializeResult struct {
	ProtocolVersion string                 `json:"protocolVersion"`
	ServerInfo      map[string]string      `json:"serverInfo"`
	Capabilities    map[string]interface{} `json:"capabilities"`
}

// RegisterRoutes registers MCP endpoints on the given router group
func (s *Server) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/mcp", s.HandleMCP)
	router.POST("/mcp/tools/list", s.HandleToolsList)
	router.POST("/mcp/tools/call", s.HandleToolsCall)
}

// HandleMCP dispatches a JSON-RPC request
func (s *Server) HandleMCP(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		s.sendError(c, nil, codeParseError, "Parse error", err.Error())
		return
	}

	switch req.Method {
	case "initialize":
		s.sendResult(c, req.ID, initializeResult{
			ProtocolVersion: protocolVersion,
			ServerInfo:      map[string]string{"name": serverName, "version": serverVersion},
			Capabilities:    map[string]interface{}{"tools": map[string]interface{}{}},
		})
	case "tools/list":
		s.sendResult(c, req.ID, ToolsListResult{Tools: s.registry.Definitions()})
	case "tools/call":
		var params ToolCallParams
		if err := json.Unmarshal(req.Params, &params); err != nil || params.Name == "" {
			s.sendError(c, req.ID, codeInvalidParams, "Invalid params", errString(err))
			return
		}
		s.sendResult(c, req.ID, s.call(c, params))
	default:
		s.sendError(c, req.ID, codeMethodNotFound, "Method not found", req.Method)
	}
}

// HandleToolsList lists tools without the JSON-RPC envelope
func (s *Server) HandleToolsList(c *gin.Context) {
	c.JSON(http.StatusOK, ToolsListResult{Tools: s.registry.Definitions()})
}

// HandleToolsCall calls a tool without the JSON-RPC envelope
func (s *Server) HandleToolsCall(c *gin.Context) {
	var params ToolCallParams
	if err := c.ShouldBindJSON(&params); err != nil || params.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": errString(err)})
		return
	}
	c.JSON(http.StatusOK, s.call(c, params))
}

func (s *Server) call(c *gin.Context, params ToolCallParams) ToolCallResult {
	log := logger.Component("mcp").With().Str("tool", params.Name).Logger()
	start := time.Now()

	result, err := s.registry.Call(c.Request.Context(), params.Name, params.Arguments)
	if err != nil {
		log.Warn().Err(err).Msg("Tool call failed")
		return ToolCallResult{
			Content: []ContentItem{{Type: "text", Text: err.Error()}},
			IsError: true,
		}
	}

	log.Info().Dur("took", time.Since(start)).Msg("Tool call completed")
	return ToolCallResult{Content: []ContentItem{{Type: "text", Text: string(result)}}}
}

func (s *Server) sendResult(c *gin.Context, id interface{}, result interface{}) {
	c.JSON(http.StatusOK, Response{JSONRPC: "2.0", ID: id, Result: result})
}

func (s *Server) sendError(c *gin.Context, id interface{}, code int, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &Error{Code: code, Message: message, Data: data},
	})
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
