package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/riskibarqy/sportsboard/internal/domain/news"
	"github.com/riskibarqy/sportsboard/internal/domain/player"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/team"
	"github.com/riskibarqy/sportsboard/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// CatalogRepositories groups the four catalog reads a DataProvider depends on.
type CatalogRepositories struct {
	Sports  sport.Repository
	Teams   team.Repository
	Players player.Repository
	News    news.Repository
}

type ProviderOptions struct {
	DefaultSport string
	Logger       *logging.Logger
}

// State is a point-in-time copy of a DataProvider.
type State struct {
	Sports        []sport.Sport
	Teams         []team.Team
	Players       []player.Player
	News          []news.Article
	Loading       bool
	Error         string
	SelectedSport string
	Generation    uint64
}

// DataProvider owns the catalog collections shown to one viewer and the
// cascade that keeps them consistent with the selected sport.
//
// Every top-level operation takes a new generation. Results of an operation
// whose generation is no longer current are discarded, so the most recently
// started operation always determines the final state.
type DataProvider struct {
	repos  CatalogRepositories
	logger *logging.Logger

	mu         sync.RWMutex
	state      State
	generation uint64
	inFlight   int
}

func NewDataProvider(repos CatalogRepositories, opts ProviderOptions) *DataProvider {
	selected := sport.NormalizeKey(opts.DefaultSport)
	if selected == "" {
		selected = sport.DefaultSelected
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &DataProvider{
		repos:  repos,
		logger: logger,
		state: State{
			Sports:        []sport.Sport{},
			Teams:         []team.Team{},
			Players:       []player.Player{},
			News:          []news.Article{},
			SelectedSport: selected,
		},
	}
}

// Initialize loads the sport catalog, the news feed, the teams of the
// selected sport and the players of the first team, in that order.
func (p *DataProvider) Initialize(ctx context.Context) State {
	ctx, span := startUsecaseSpan(ctx, "usecase.DataProvider.Initialize")
	defer span.End()

	gen := p.begin(true)
	defer p.end()

	p.initialize(ctx, gen)
	return p.Snapshot()
}

// SelectSport changes the selected sport and reruns the full initialization
// cascade. Only sports present in the catalog are accepted. When the catalog
// has not been loaded yet the name is checked once the cascade has fetched
// it, and an unknown sport puts the previous selection back.
func (p *DataProvider) SelectSport(ctx context.Context, name string) (State, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DataProvider.SelectSport", attribute.String("sport", name))
	defer span.End()

	key := sport.NormalizeKey(name)
	if key == "" {
		return p.Snapshot(), fmt.Errorf("%w: sport name is required", ErrInvalidInput)
	}

	p.mu.Lock()
	previous := p.state.SelectedSport
	verified := len(p.state.Sports) > 0
	if verified {
		if _, ok := sport.Find(p.state.Sports, key); !ok {
			p.mu.Unlock()
			return p.Snapshot(), fmt.Errorf("%w: %s", ErrUnknownSport, key)
		}
	}
	p.state.SelectedSport = key
	p.mu.Unlock()

	gen := p.begin(true)
	defer p.end()

	p.initialize(ctx, gen)
	if verified {
		return p.Snapshot(), nil
	}

	var (
		known    bool
		restored bool
		loaded   bool
	)
	p.apply(gen, func(s *State) {
		loaded = len(s.Sports) > 0
		_, known = sport.Find(s.Sports, key)
		if !known && s.SelectedSport == key {
			s.SelectedSport = previous
			restored = true
		}
	})

	switch {
	case known, !restored:
		return p.Snapshot(), nil
	case !loaded:
		// Catalog still unavailable: the fetch error is already in state.
		return p.Snapshot(), nil
	}

	p.loadTeams(ctx, gen, previous)
	return p.Snapshot(), fmt.Errorf("%w: %s", ErrUnknownSport, key)
}

// LoadTeams replaces the team list with the teams of sportName and loads the
// players of the first team. Sports without teams clear both lists.
func (p *DataProvider) LoadTeams(ctx context.Context, sportName string) State {
	ctx, span := startUsecaseSpan(ctx, "usecase.DataProvider.LoadTeams", attribute.String("sport", sportName))
	defer span.End()

	gen := p.begin(false)
	defer p.end()

	p.loadTeams(ctx, gen, sportName)
	return p.Snapshot()
}

// LoadPlayers replaces the player list with the players of teamName.
func (p *DataProvider) LoadPlayers(ctx context.Context, teamName string) State {
	ctx, span := startUsecaseSpan(ctx, "usecase.DataProvider.LoadPlayers", attribute.String("team", teamName))
	defer span.End()

	gen := p.begin(false)
	defer p.end()

	p.loadPlayers(ctx, gen, teamName)
	return p.Snapshot()
}

func (p *DataProvider) Snapshot() State {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := p.state
	out.Sports = append([]sport.Sport(nil), p.state.Sports...)
	out.Teams = append([]team.Team(nil), p.state.Teams...)
	out.Players = append([]player.Player(nil), p.state.Players...)
	out.News = append([]news.Article(nil), p.state.News...)
	out.Loading = p.inFlight > 0
	out.Generation = p.generation
	return out
}

func (p *DataProvider) initialize(ctx context.Context, gen uint64) {
	sports, err := p.repos.Sports.List(ctx)
	if err != nil {
		p.fail(ctx, gen, "list sports failed", err)
		return
	}
	p.apply(gen, func(s *State) {
		s.Sports = sports
	})

	articles, err := p.repos.News.List(ctx)
	if err != nil {
		p.logger.WarnContext(ctx, "list news failed", "generation", gen, "error", err)
	} else {
		p.apply(gen, func(s *State) {
			s.News = articles
		})
	}

	p.mu.RLock()
	selected := p.state.SelectedSport
	p.mu.RUnlock()

	p.loadTeams(ctx, gen, selected)
}

func (p *DataProvider) loadTeams(ctx context.Context, gen uint64, sportName string) {
	teams, err := p.repos.Teams.ListBySport(ctx, strings.TrimSpace(sportName))
	if err != nil {
		p.fail(ctx, gen, "list teams failed", err, "sport", sportName)
		return
	}
	if !p.apply(gen, func(s *State) {
		s.Teams = teams
	}) {
		return
	}

	if len(teams) == 0 {
		p.apply(gen, func(s *State) {
			s.Players = []player.Player{}
		})
		return
	}

	p.loadPlayers(ctx, gen, teams[0].Name)
}

func (p *DataProvider) loadPlayers(ctx context.Context, gen uint64, teamName string) {
	players, err := p.repos.Players.ListByTeam(ctx, teamName)
	if err != nil {
		p.fail(ctx, gen, "list players failed", err, "team", teamName)
		return
	}
	p.apply(gen, func(s *State) {
		s.Players = players
	})
}

func (p *DataProvider) begin(clearError bool) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.generation++
	p.inFlight++
	if clearError {
		p.state.Error = ""
	}
	return p.generation
}

func (p *DataProvider) end() {
	p.mu.Lock()
	p.inFlight--
	p.mu.Unlock()
}

// apply runs mutate when gen is still current and reports whether it did.
func (p *DataProvider) apply(gen uint64, mutate func(*State)) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.generation {
		return false
	}
	mutate(&p.state)
	return true
}

func (p *DataProvider) fail(ctx context.Context, gen uint64, msg string, err error, args ...any) {
	fields := append([]any{"generation", gen, "error", err}, args...)
	if !p.apply(gen, func(s *State) {
		s.Error = FetchFailedMessage
	}) {
		p.logger.DebugContext(ctx, msg+" for stale generation", fields...)
		return
	}
	p.logger.ErrorContext(ctx, msg, fields...)
}
