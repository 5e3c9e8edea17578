package mcp

import (
	"context"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/displayconf/internal/monitor"
)

const (
	ServerName    = "displayconf"
	ServerVersion = "0.1.0"
)

// Server exposes display config conversion as MCP tools.
type Server struct {
	mcpServer *mcpsdk.Server
	monitors  monitor.Lister
	logger    *slog.Logger
}

// NewServer builds the server. monitors may be nil when no display server
// is reachable; fullscreen configs then fail to resolve.
func NewServer(monitors monitor.Lister, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		monitors: monitors,
		logger:   logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_monitors",
		Description: "List the monitors attached to the display server, with the ident to use for the fullscreen key of a display config.",
	}, s.handleListMonitors)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "build_window",
		Description: "Decode a display config (YAML) and return the window attributes it produces. Keys left out take their defaults. Fails if fullscreen names a monitor that is not attached.",
	}, s.handleBuildWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "default_config",
		Description: "Return the default display config as YAML.",
	}, s.handleDefaultConfig)
}

func (s *Server) snapshot() (monitor.List, error) {
	if s.monitors == nil {
		return monitor.List{}, nil
	}
	handles, err := s.monitors.Monitors()
	if err != nil {
		return nil, err
	}
	return monitor.List(handles), nil
}
