package memory

import (
	"github.com/riskibarqy/sportsboard/internal/domain/news"
	"github.com/riskibarqy/sportsboard/internal/domain/player"
	"github.com/riskibarqy/sportsboard/internal/domain/sport"
	"github.com/riskibarqy/sportsboard/internal/domain/team"
)

const placeholderImage = "https://via.placeholder.com/150"

func SeedSports() []sport.Sport {
	return []sport.Sport{
		{
			ID:          1,
			Name:        "Basketball",
			ImageURL:    "https://images.unsplash.com/photo-1546519638-68e109acd618",
			Description: "Basketball is a team sport in which two teams, most commonly of five players each, opposing one another on a rectangular court.",
		},
		{
			ID:          2,
			Name:        "Football",
			ImageURL:    "https://images.unsplash.com/photo-1508098682722-e99c643e7485",
			Description: "Football is a team sport played between two teams of 11 players with a spherical ball.",
		},
		{
			ID:          3,
			Name:        "Tennis",
			ImageURL:    "https://images.unsplash.com/photo-1595435934249-5df7ed86e1c1",
			Description: "Tennis is a racket sport that can be played individually against a single opponent or between two teams of two players each.",
		},
		{
			ID:          4,
			Name:        "Cricket",
			ImageURL:    "https://images.unsplash.com/photo-1531415074968-036ba1b575da",
			Description: "Cricket is a bat-and-ball game played between two teams of eleven players on a field at the center of which is a 22-yard pitch.",
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID: 1, Name: "LA Lakers", LogoURL: placeholderImage, Sport: "basketball",
			Description: "One of the most successful teams in the NBA.",
			Stats:       team.Stats{Wins: 45, Losses: 27, Ranking: 2, Points: float64Ptr(110.5)},
		},
		{
			ID: 2, Name: "Boston Celtics", LogoURL: placeholderImage, Sport: "basketball",
			Description: "Historic NBA franchise with numerous championships.",
			Stats:       team.Stats{Wins: 49, Losses: 23, Ranking: 1, Points: float64Ptr(112.3)},
		},
		{
			ID: 3, Name: "Golden State Warriors", LogoURL: placeholderImage, Sport: "basketball",
			Description: "Recent dynasty in the NBA.",
			Stats:       team.Stats{Wins: 40, Losses: 32, Ranking: 5, Points: float64Ptr(115.7)},
		},
		{
			ID: 4, Name: "Manchester United", LogoURL: placeholderImage, Sport: "football",
			Description: "Premier League giants with a rich history.",
			Stats:       team.Stats{Wins: 22, Losses: 8, Ties: intPtr(5), Ranking: 2, Points: float64Ptr(71)},
		},
		{
			ID: 5, Name: "Real Madrid", LogoURL: placeholderImage, Sport: "football",
			Description: "One of the most successful football clubs in the world.",
			Stats:       team.Stats{Wins: 25, Losses: 5, Ties: intPtr(5), Ranking: 1, Points: float64Ptr(80)},
		},
	}
}

// SeedPlayers classifies raw stat records the same way a real source would.
func SeedPlayers() []player.Player {
	return []player.Player{
		{
			ID: 1, Name: "LeBron James", ImageURL: placeholderImage, Team: "LA Lakers", Position: "Forward",
			Stats: player.ClassifyStats(player.RawStats{Points: 27.5, Assists: 8.3, Rebounds: float64Ptr(7.8)}),
		},
		{
			ID: 2, Name: "Anthony Davis", ImageURL: placeholderImage, Team: "LA Lakers", Position: "Forward/Center",
			Stats: player.ClassifyStats(player.RawStats{Points: 24.7, Assists: 3.1, Rebounds: float64Ptr(12.4)}),
		},
		{
			ID: 3, Name: "Jayson Tatum", ImageURL: placeholderImage, Team: "Boston Celtics", Position: "Forward",
			Stats: player.ClassifyStats(player.RawStats{Points: 26.9, Assists: 4.4, Rebounds: float64Ptr(8.0)}),
		},
		{
			ID: 4, Name: "Jaylen Brown", ImageURL: placeholderImage, Team: "Boston Celtics", Position: "Guard/Forward",
			Stats: player.ClassifyStats(player.RawStats{Points: 23.8, Assists: 3.5, Rebounds: float64Ptr(6.3)}),
		},
		{
			ID: 5, Name: "Marcus Rashford", ImageURL: placeholderImage, Team: "Manchester United", Position: "Forward",
			Stats: player.ClassifyStats(player.RawStats{Points: 0, Assists: 7, Goals: float64Ptr(15)}),
		},
		{
			ID: 6, Name: "Bruno Fernandes", ImageURL: placeholderImage, Team: "Manchester United", Position: "Midfielder",
			Stats: player.ClassifyStats(player.RawStats{Points: 0, Assists: 14, Goals: float64Ptr(12)}),
		},
	}
}

func SeedNews() []news.Article {
	return []news.Article{
		{
			ID:       1,
			Title:    "Lakers Win Championship",
			Summary:  "The Los Angeles Lakers have won their 18th NBA championship after a thrilling Game 7.",
			Date:     "2025-04-15",
			ImageURL: "https://images.unsplash.com/photo-1504450758481-7338eba7524a",
			Author:   "John Smith",
		},
		{
			ID:       2,
			Title:    "New Transfer Record",
			Summary:  "Manchester United breaks transfer record with their new signing.",
			Date:     "2025-04-12",
			ImageURL: "https://images.unsplash.com/photo-1522778526097-ce0a22ceb253",
			Author:   "Jane Doe",
		},
		{
			ID:       3,
			Title:    "Grand Slam Surprise",
			Summary:  "Unexpected winner takes home the trophy at this year's first Grand Slam.",
			Date:     "2025-04-10",
			ImageURL: "https://images.unsplash.com/photo-1599586120429-48281b6f0ece",
			Author:   "Alex Johnson",
		},
		{
			ID:       4,
			Title:    "Olympic Committee Announces Changes",
			Summary:  "New sports added to the upcoming Olympic Games lineup.",
			Date:     "2025-04-08",
			ImageURL: "https://images.unsplash.com/photo-1569517282132-25d22f4573e6",
			Author:   "Sam Brown",
		},
	}
}

// NewCatalog wires memory repositories over the seed data.
func NewCatalog(latency Latency) (*SportRepository, *TeamRepository, *PlayerRepository, *NewsRepository) {
	return NewSportRepository(SeedSports(), latency),
		NewTeamRepository(SeedTeams(), latency),
		NewPlayerRepository(SeedPlayers(), latency),
		NewNewsRepository(SeedNews(), latency)
}

func float64Ptr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}
