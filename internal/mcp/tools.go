package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/displayconf/internal/config"
	"github.com/1broseidon/displayconf/internal/monitor"
	"github.com/1broseidon/displayconf/internal/yamlutil"
)

func (s *Server) handleListMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListMonitorsInput) (*mcpsdk.CallToolResult, ListMonitorsOutput, error) {
	list, err := s.snapshot()
	if err != nil {
		s.logger.Warn("list_monitors failed", "error", err)
		return nil, ListMonitorsOutput{}, fmt.Errorf("failed to list monitors: %w", err)
	}

	out := ListMonitorsOutput{Monitors: make([]MonitorInfo, 0, len(list))}
	for _, h := range list {
		ident, err := yamlutil.Inline(monitor.IdentOf(h))
		if err != nil {
			return nil, ListMonitorsOutput{}, err
		}
		out.Monitors = append(out.Monitors, MonitorInfo{
			Monitor: h,
			Ident:   ident,
		})
	}
	s.logger.Debug("list_monitors", "count", len(out.Monitors))
	return nil, out, nil
}

func (s *Server) handleBuildWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args BuildWindowInput) (*mcpsdk.CallToolResult, BuildWindowOutput, error) {
	cfg, err := config.Decode([]byte(args.ConfigYAML))
	if err != nil {
		return nil, BuildWindowOutput{}, err
	}

	var access monitor.Access
	if cfg.Fullscreen != nil {
		list, err := s.snapshot()
		if err != nil {
			return nil, BuildWindowOutput{}, fmt.Errorf("failed to list monitors: %w", err)
		}
		access = list
	}

	b, err := cfg.ToBuilder(access)
	if err != nil {
		s.logger.Warn("build_window failed", "error", err)
		return nil, BuildWindowOutput{}, err
	}
	return nil, BuildWindowOutput{Window: b.Window}, nil
}

func (s *Server) handleDefaultConfig(_ context.Context, _ *mcpsdk.CallToolRequest, _ DefaultConfigInput) (*mcpsdk.CallToolResult, DefaultConfigOutput, error) {
	data, err := config.Encode(config.DefaultDisplayConfig())
	if err != nil {
		return nil, DefaultConfigOutput{}, err
	}
	return nil, DefaultConfigOutput{YAML: string(data)}, nil
}
