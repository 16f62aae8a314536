// ABOUTME: MCP server setup for the fitness ledger.
// ABOUTME: Wraps the MCP server around a training.Service.
package mcp

import (
	"context"

	"github.com/harperreed/fitness/internal/training"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
)

// Server wraps the MCP server with training operations.
type Server struct {
	mcpServer *mcp.Server
	svc       *training.Service
	log       logrus.FieldLogger
}

// NewServer creates a new MCP server over svc. A nil logger uses the
// standard logrus logger.
func NewServer(svc *training.Service, log logrus.FieldLogger) (*Server, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fitness",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		svc:       svc,
		log:       log,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.log.Info("mcp server listening on stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
