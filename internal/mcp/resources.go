// ABOUTME: MCP resource implementations for the fitness ledger.
// ABOUTME: Provides fitness://today, fitness://summary, and fitness://prs resources.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/fitness/internal/render"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	todayURI   = "fitness://today"
	summaryURI = "fitness://summary"
	prsURI     = "fitness://prs"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today's Workout",
		Description: "The prescribed workout for today from the active program",
		MIMEType:    "text/markdown",
	}, s.handleTodayResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "Fitness Dashboard",
		Description: "Today's protein and readiness plus this week's workouts and latest weight",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         prsURI,
		Name:        "Personal Records",
		Description: "Current PR for every lift and rep count",
		MIMEType:    "application/json",
	}, s.handlePRsResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	p, err := s.svc.GetToday(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve today: %w", err)
	}
	return resourceText(todayURI, "text/markdown", render.Today(p)), nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sum, err := s.svc.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}
	text, err := render.Summary(sum, render.JSON)
	if err != nil {
		return nil, err
	}
	return resourceText(summaryURI, "application/json", text), nil
}

func (s *Server) handlePRsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	prs, err := s.svc.PRBoard(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list PRs: %w", err)
	}
	text, err := render.PRBoard(prs, render.JSON)
	if err != nil {
		return nil, err
	}
	return resourceText(prsURI, "application/json", text), nil
}

func resourceText(uri, mime, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mime,
			Text:     text,
		}},
	}
}
