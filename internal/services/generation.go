package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/uiforge/uiforge-backend/internal/logger"
	"github.com/uiforge/uiforge-backend/internal/repos"
	"github.com/uiforge/uiforge-backend/internal/templates"
	"github.com/uiforge/uiforge-backend/internal/types"
)

var (
	ErrEmptyDescription = errors.New("component description must not be empty")
	ErrUnknownType      = errors.New("unsupported component type")
	ErrPipeline         = errors.New("generation pipeline failed")
	ErrMalformedResult  = errors.New("pipeline produced a malformed result")
)

// GenerationService runs the three-stage agent pipeline for a component
// request and persists the outcome.
type GenerationService interface {
	GenerateComponent(ctx context.Context, req GenerateComponentRequest) (*types.Generation, error)
	ListGenerations(ctx context.Context) ([]*types.Generation, error)
}

type GenerateComponentRequest struct {
	UserID        uuid.UUID `json:"-"`
	ComponentType string    `json:"componentType"`
	Description   string    `json:"description"`
}

type generationService struct {
	generationRepo repos.GenerationRepo
	runner         TeamRunner
	log            *logger.Logger
}

func NewGenerationService(generationRepo repos.GenerationRepo, runner TeamRunner, baseLog *logger.Logger) GenerationService {
	return &generationService{
		generationRepo: generationRepo,
		runner:         runner,
		log:            baseLog.With("service", "generation"),
	}
}

// parsedResult is the JSON payload every pipeline run must end with. Notes
// are optional; code is not.
type parsedResult struct {
	Code  string `json:"code"`
	Notes string `json:"notes"`
}

func (gs *generationService) GenerateComponent(ctx context.Context, req GenerateComponentRequest) (*types.Generation, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	tmpl, ok := templates.Lookup(req.ComponentType)
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownType, req.ComponentType, strings.Join(templates.SupportedTypes(), ", "))
	}

	if req.UserID == uuid.Nil {
		return nil, errors.New("missing user id on generation request")
	}

	componentName := GenerateComponentName(description)
	prompts := BuildPrompts(tmpl.Name, description, tmpl)
	spec := buildTeamSpec(componentName, prompts)

	gs.log.Info("starting generation", "component", componentName, "type", tmpl.Name, "user_id", req.UserID)
	result := gs.runner.Run(ctx, spec)
	if result.Status != TeamStatusFinished {
		gs.log.Error("pipeline run failed", "component", componentName, "status", result.Status, "error", result.Err)
		return nil, fmt.Errorf("%w: %v", ErrPipeline, result.Err)
	}

	parsed, err := parsePipelineResult(result.Result)
	if err != nil {
		gs.log.Error("pipeline result unusable", "component", componentName, "error", err)
		return nil, err
	}

	statsJSON, err := json.Marshal(result.Stats)
	if err != nil {
		return nil, fmt.Errorf("marshal pipeline stats: %w", err)
	}

	now := time.Now().UTC()
	gen := &types.Generation{
		ComponentName: componentName,
		ComponentType: tmpl.Name,
		ResultCode:    parsed.Code,
		Notes:         parsed.Notes,
		UserID:        req.UserID,
		Stats:         datatypes.JSON(statsJSON),
		CompletedAt:   &now,
	}
	created, err := gs.generationRepo.Create(ctx, nil, []*types.Generation{gen})
	if err != nil {
		return nil, fmt.Errorf("persist generation: %w", err)
	}
	gs.log.Info("generation finished", "component", componentName, "id", created[0].ID, "total_tokens", result.Stats.TotalTokens)
	return created[0], nil
}

func (gs *generationService) ListGenerations(ctx context.Context) ([]*types.Generation, error) {
	return gs.generationRepo.GetAll(ctx, nil)
}

// parsePipelineResult decodes the final task output. The model sometimes
// wraps its JSON in a markdown fence; strip that before decoding. A payload
// with no usable "code" field is malformed regardless of how well it parses.
func parsePipelineResult(raw string) (*parsedResult, error) {
	cleaned := stripCodeFence(strings.TrimSpace(raw))
	var parsed parsedResult
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResult, err)
	}
	if strings.TrimSpace(parsed.Code) == "" {
		return nil, fmt.Errorf("%w: missing code field", ErrMalformedResult)
	}
	return &parsed, nil
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// drop the language tag line ("json", "html", ...)
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// buildTeamSpec wires the fixed three-agent, three-task pipeline: a
// researcher with web search, a structure designer, and a Tailwind stylist.
func buildTeamSpec(componentName string, prompts TaskPrompts) TeamSpec {
	return TeamSpec{
		Name: componentName + " Team",
		Agents: []AgentSpec{
			{
				Name:       "Luna",
				Role:       "HTML/CSS Researcher",
				Goal:       "Research best practices for the requested component and summarize findings the designers can act on.",
				Background: "Expert in frontend component patterns, accessibility, and Tailwind CSS conventions.",
				Tools:      []string{"search"},
			},
			{
				Name:       "Nova",
				Role:       "HTML Designer",
				Goal:       "Produce clean, semantic, accessible HTML markup that satisfies the request.",
				Background: "Seasoned frontend engineer focused on semantic structure and responsive layout.",
			},
			{
				Name:       "Zen",
				Role:       "Tailwind CSS Stylist",
				Goal:       "Style the markup with Tailwind utility classes for a polished, modern look.",
				Background: "Design-systems specialist fluent in Tailwind CSS.",
			},
		},
		Tasks: []TaskSpec{
			{
				Title:          "research",
				Prompt:         prompts.Research,
				ExpectedOutput: "A JSON object with empty code and research findings in notes.",
				AgentIndex:     0,
			},
			{
				Title:          "structure",
				Prompt:         prompts.Structure,
				ExpectedOutput: "A JSON object whose code field holds complete HTML markup.",
				AgentIndex:     1,
			},
			{
				Title:          "style",
				Prompt:         prompts.Style,
				ExpectedOutput: "A JSON object whose code field holds the final Tailwind-styled HTML.",
				AgentIndex:     2,
			},
		},
	}
}
