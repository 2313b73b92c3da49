package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/sportsboard/internal/domain/player"
)

func TestTeamRepository_ListBySportIsCaseInsensitive(t *testing.T) {
	repo := NewTeamRepository(SeedTeams(), 0)

	for _, name := range []string{"football", "Football", "FOOTBALL", " football "} {
		teams, err := repo.ListBySport(context.Background(), name)
		if err != nil {
			t.Fatalf("list teams for %q: %v", name, err)
		}
		if len(teams) != 2 {
			t.Fatalf("expected 2 football teams for %q, got %d", name, len(teams))
		}
		if teams[0].Name != "Manchester United" {
			t.Fatalf("unexpected first team for %q: %s", name, teams[0].Name)
		}
	}
}

func TestTeamRepository_UnknownSportIsEmpty(t *testing.T) {
	repo := NewTeamRepository(SeedTeams(), 0)

	teams, err := repo.ListBySport(context.Background(), "tennis")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("expected no tennis teams, got %d", len(teams))
	}
}

func TestPlayerRepository_ListByTeamExactName(t *testing.T) {
	repo := NewPlayerRepository(SeedPlayers(), 0)

	players, err := repo.ListByTeam(context.Background(), "LA Lakers")
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 2 || players[0].Name != "LeBron James" || players[1].Name != "Anthony Davis" {
		t.Fatalf("unexpected lakers roster: %+v", players)
	}

	players, err = repo.ListByTeam(context.Background(), "la lakers")
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 0 {
		t.Fatalf("expected exact team match only, got %d players", len(players))
	}
}

func TestPlayerRepository_ReturnsCopies(t *testing.T) {
	repo := NewPlayerRepository(SeedPlayers(), 0)

	first, _ := repo.ListByTeam(context.Background(), "Boston Celtics")
	first[0].Name = "mutated"

	second, _ := repo.ListByTeam(context.Background(), "Boston Celtics")
	if second[0].Name != "Jayson Tatum" {
		t.Fatalf("repository state leaked through returned slice: %s", second[0].Name)
	}
}

func TestSeedPlayers_StatShapes(t *testing.T) {
	for _, item := range SeedPlayers() {
		want := player.ShapeBasketball
		if item.Team == "Manchester United" {
			want = player.ShapeFootball
		}
		if got := item.Stats.Shape(); got != want {
			t.Fatalf("player %s: expected shape %s, got %s", item.Name, want, got)
		}
	}
}

func TestLatency_RespectsCancellation(t *testing.T) {
	repo := NewSportRepository(SeedSports(), Latency(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLatency_Delays(t *testing.T) {
	repo := NewNewsRepository(SeedNews(), Latency(20*time.Millisecond))

	start := time.Now()
	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list news: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected synthetic latency, returned after %s", elapsed)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 articles, got %d", len(items))
	}
}
