package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/teicheck/teicheck/internal/adapters/outbound/gitinfo"
	"github.com/teicheck/teicheck/internal/adapters/outbound/history"
	"github.com/teicheck/teicheck/internal/adapters/outbound/scanner"
	"github.com/teicheck/teicheck/internal/adapters/outbound/tester"
	"github.com/teicheck/teicheck/internal/application"
)

// registerTools registers all teicheck MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. teicheck_test
	s.AddTool(
		mcplib.NewTool("teicheck_test",
			mcplib.WithDescription("Validate catalog and TEI files and return the full run report as JSON"),
			mcplib.WithString("files",
				mcplib.Required(),
				mcplib.Description("Comma-separated file or directory paths; directories are walked for .xml files"),
			),
			mcplib.WithBoolean("catalog",
				mcplib.Description("Treat __cts__.xml files as catalog metadata (default true)"),
			),
		),
		handleTest(projectPath),
	)

	// 2. teicheck_metadata
	s.AddTool(
		mcplib.NewTool("teicheck_metadata",
			mcplib.WithDescription("Parse catalog files and return the metadata model (identifier, title, description, Dublin Core and extension metadata) as JSON"),
			mcplib.WithString("files",
				mcplib.Required(),
				mcplib.Description("Comma-separated file or directory paths"),
			),
		),
		handleMetadata(projectPath),
	)
}

// newService creates the standard set of outbound adapters and the service.
func newService() *application.TestService {
	return application.NewTestService(tester.New(), history.New(), gitinfo.New())
}

func handleTest(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		filesArg, err := request.RequireString("files")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		catalog := true
		if v, ok := request.GetArguments()["catalog"].(bool); ok {
			catalog = v
		}

		files, err := scanner.New().Expand(splitPaths(filesArg))
		if err != nil {
			return errorResult(fmt.Sprintf("resolving files: %v", err)), nil
		}

		run, err := newService().Run(projectPath, files, catalog)
		if err != nil {
			return errorResult(fmt.Sprintf("test run failed: %v", err)), nil
		}
		return jsonResult(run)
	}
}

func handleMetadata(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		filesArg, err := request.RequireString("files")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		files, err := scanner.New().Expand(splitPaths(filesArg))
		if err != nil {
			return errorResult(fmt.Sprintf("resolving files: %v", err)), nil
		}

		run, err := tester.New().Ingest(files, true)
		if err != nil {
			return errorResult(fmt.Sprintf("parsing catalog failed: %v", err)), nil
		}
		if run.Catalog == nil {
			return errorResult("no catalog files found"), nil
		}
		return jsonResult(run.Catalog)
	}
}

func splitPaths(csv string) []string {
	var paths []string
	for _, p := range strings.Split(csv, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
