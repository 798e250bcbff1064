package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/repository"
)

// TeamService manages teams.
type TeamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
	}
}

// CreateTeam inserts a team named name.
func (s *TeamService) CreateTeam(ctx context.Context, actor Actor, name string) (*models.Team, error) {
	if err := authorize(actor, OpCreateTeam); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("team_name", ErrFieldRequired)
	}

	team := &models.Team{TeamName: name}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, writeError("create team", err)
	}

	return team, nil
}

// ListNames returns the team lookup table of the task form.
func (s *TeamService) ListNames(ctx context.Context, actor Actor) ([]repository.NameRef, error) {
	if err := authorize(actor, OpLookupNames); err != nil {
		return nil, err
	}

	refs, err := s.teamRepo.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return refs, nil
}
