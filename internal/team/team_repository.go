package team

import (
	"github.com/DhavalSuthar-24/kickstats/internal/sample"
)

// TeamRepository defines the read operations the team pages need
type TeamRepository interface {
	GetTeamByName(name string) (*sample.TeamStats, error)
	SearchTeams(term string) ([]sample.TeamStats, error)
	GetAllTeams() ([]sample.TeamStats, error)
	GetHistory(name string, seasons int) (sample.History, error)
}

type teamRepository struct {
	provider sample.Provider
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(provider sample.Provider) TeamRepository {
	return &teamRepository{provider: provider}
}

// GetTeamByName returns nil, nil when no team matches.
func (r *teamRepository) GetTeamByName(name string) (*sample.TeamStats, error) {
	t, ok := sample.FindTeamStats(r.provider, name)
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *teamRepository) SearchTeams(term string) ([]sample.TeamStats, error) {
	return sample.SearchTeamStats(r.provider, term), nil
}

func (r *teamRepository) GetAllTeams() ([]sample.TeamStats, error) {
	return r.provider.TeamStats(), nil
}

func (r *teamRepository) GetHistory(name string, seasons int) (sample.History, error) {
	return r.provider.History(name, seasons), nil
}
