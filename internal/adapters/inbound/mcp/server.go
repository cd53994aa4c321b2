package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewTeicheckMCPServer creates a new MCP server with all teicheck tools and
// resources registered. The projectPath is the directory whose config and
// run history are used.
func NewTeicheckMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"teicheck",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
