package player

import "github.com/riskibarqy/sportsboard/internal/domain/comparison"

// Shape names the stat layout a player line was ingested as.
type Shape string

const (
	ShapeBasketball Shape = "basketball"
	ShapeFootball   Shape = "football"
	ShapeGeneric    Shape = "generic"
)

// Stat keys shared by every shape and by comparison tables.
const (
	StatPoints   = "points"
	StatAssists  = "assists"
	StatRebounds = "rebounds"
	StatGoals    = "goals"
	StatTackles  = "tackles"
	StatSaves    = "saves"
)

// Stats is a sport-specific season line. Implementations are
// BasketballStats, FootballStats and GenericStats.
type Stats interface {
	Shape() Shape
	// Values exposes every stat the line carries keyed by stat name.
	Values() map[string]comparison.Value
	isStats()
}

type BasketballStats struct {
	Points   float64
	Assists  float64
	Rebounds float64
}

func (BasketballStats) Shape() Shape { return ShapeBasketball }
func (BasketballStats) isStats()     {}

func (s BasketballStats) Values() map[string]comparison.Value {
	return map[string]comparison.Value{
		StatPoints:   comparison.Number(s.Points),
		StatAssists:  comparison.Number(s.Assists),
		StatRebounds: comparison.Number(s.Rebounds),
	}
}

type FootballStats struct {
	Points  float64
	Goals   float64
	Assists float64
	Tackles *float64
	Saves   *float64
}

func (FootballStats) Shape() Shape { return ShapeFootball }
func (FootballStats) isStats()     {}

func (s FootballStats) Values() map[string]comparison.Value {
	return map[string]comparison.Value{
		StatPoints:  comparison.Number(s.Points),
		StatGoals:   comparison.Number(s.Goals),
		StatAssists: comparison.Number(s.Assists),
		StatTackles: comparison.Optional(s.Tackles),
		StatSaves:   comparison.Optional(s.Saves),
	}
}

type GenericStats struct {
	Points  float64
	Assists float64
}

func (GenericStats) Shape() Shape { return ShapeGeneric }
func (GenericStats) isStats()     {}

func (s GenericStats) Values() map[string]comparison.Value {
	return map[string]comparison.Value{
		StatPoints:  comparison.Number(s.Points),
		StatAssists: comparison.Number(s.Assists),
	}
}

// RawStats is a stat record as delivered by a catalog source, where optional
// fields are present only for the sports that track them.
type RawStats struct {
	Points   float64
	Assists  float64
	Rebounds *float64
	Goals    *float64
	Tackles  *float64
	Saves    *float64
}

// ClassifyStats picks the stat shape from field presence. Rebounds wins over
// goals; a record with neither is generic.
func ClassifyStats(raw RawStats) Stats {
	switch {
	case raw.Rebounds != nil:
		return BasketballStats{
			Points:   raw.Points,
			Assists:  raw.Assists,
			Rebounds: *raw.Rebounds,
		}
	case raw.Goals != nil:
		return FootballStats{
			Points:  raw.Points,
			Goals:   *raw.Goals,
			Assists: raw.Assists,
			Tackles: raw.Tackles,
			Saves:   raw.Saves,
		}
	default:
		return GenericStats{
			Points:  raw.Points,
			Assists: raw.Assists,
		}
	}
}

// StatField is one labelled value shown on a player card.
type StatField struct {
	Key   string
	Label string
	Value float64
}

// SelectStatFields returns the ordered card fields for a stat line.
func SelectStatFields(stats Stats) []StatField {
	switch s := stats.(type) {
	case BasketballStats:
		return []StatField{
			{Key: StatPoints, Label: "PTS", Value: s.Points},
			{Key: StatAssists, Label: "AST", Value: s.Assists},
			{Key: StatRebounds, Label: "REB", Value: s.Rebounds},
		}
	case FootballStats:
		return []StatField{
			{Key: StatGoals, Label: "GOALS", Value: s.Goals},
			{Key: StatAssists, Label: "ASST", Value: s.Assists},
		}
	case GenericStats:
		return genericFields(s)
	default:
		return genericFields(GenericStats{})
	}
}

func genericFields(s GenericStats) []StatField {
	return []StatField{
		{Key: StatPoints, Label: "PTS", Value: s.Points},
		{Key: StatAssists, Label: "ASST", Value: s.Assists},
	}
}

// ComparisonKeys returns the stat keys compared for players of the given
// shape, with display labels.
func ComparisonKeys(shape Shape) []comparison.StatKey {
	switch shape {
	case ShapeBasketball:
		return []comparison.StatKey{
			{Key: StatPoints, Label: "Points"},
			{Key: StatAssists, Label: "Assists"},
			{Key: StatRebounds, Label: "Rebounds"},
		}
	case ShapeFootball:
		return []comparison.StatKey{
			{Key: StatGoals, Label: "Goals"},
			{Key: StatAssists, Label: "Assists"},
			{Key: StatTackles, Label: "Tackles"},
			{Key: StatSaves, Label: "Saves"},
		}
	default:
		return []comparison.StatKey{
			{Key: StatPoints, Label: "Points"},
			{Key: StatAssists, Label: "Assists"},
		}
	}
}
