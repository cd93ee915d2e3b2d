package traffic

import (
	"math"
	"math/rand"

	"github.com/golangdaddy/laneracer/models"
	"github.com/golangdaddy/laneracer/road"
)

// Params controls how densely traffic is laid out along the course
type Params struct {
	StartOffset     float64 `json:"start_offset"` // World Y of the first row, ahead of the grid
	Spacing         float64 `json:"spacing"`      // Extra gap added after every safe gap
	CarLength       float64 `json:"car_length"`
	PlayerSpeed     float64 `json:"player_speed"`
	PlayerTurnSpeed float64 `json:"player_turn_speed"`
	TrafficSpeed    float64 `json:"traffic_speed"`
}

// DefaultParams returns the layout the game ships with
func DefaultParams() Params {
	return Params{
		StartOffset:     -1000,
		Spacing:         50,
		CarLength:       100,
		PlayerSpeed:     15,
		PlayerTurnSpeed: 5,
		TrafficSpeed:    10,
	}
}

// Placement is one traffic car to create before the race
type Placement struct {
	Lane     int     // Lane index the car drives in
	Y        float64 // World Y of the car's centre
	TurnLane int     // Lane to swerve into later, models.NoTurnLane if none
}

// Generator lays out background traffic for one course
type Generator struct {
	road   *road.Road
	params Params
	rng    *rand.Rand
}

// NewGenerator creates a traffic generator for a road
func NewGenerator(rd *road.Road, params Params, rng *rand.Rand) *Generator {
	return &Generator{road: rd, params: params, rng: rng}
}

// End returns the world Y where the walk stops.
// Traffic moves while the player drives, so only the part of the course the player
// catches up with before the finish is filled.
func (g *Generator) End() float64 {
	return -g.road.Length * g.params.TrafficSpeed / g.params.PlayerSpeed
}

// MinGap returns the longitudinal gap the player needs to steer from one lane to the other
// while closing in on traffic, plus two car lengths of margin.
func (g *Generator) MinGap(from, to road.Lane) float64 {
	dx := math.Abs(from.Center() - to.Center())
	t := dx / g.params.PlayerTurnSpeed
	dy := math.Abs(g.params.TrafficSpeed-g.params.PlayerSpeed) * t
	return dy + 2*g.params.CarLength
}

// Generate walks from the start offset toward the end of the course and returns the cars to place,
// nearest first, together with the final cursor. No car is placed at or beyond End.
func (g *Generator) Generate() ([]Placement, float64) {
	lanes := g.road.Lanes
	cursor := g.params.StartOffset
	end := g.End()
	if len(lanes) == 0 {
		return nil, cursor
	}

	var placements []Placement
	previous := lanes[0]

	for cursor > end {
		path := lanes[g.rng.Intn(len(lanes))]
		step := g.MinGap(previous, path) + g.params.Spacing
		if step <= 0 {
			break
		}
		cursor -= step
		if cursor <= end {
			break
		}

		placements = append(placements, Placement{Lane: path.Index, Y: cursor, TurnLane: models.NoTurnLane})
		placements = append(placements, g.fillRow(path, cursor)...)
		previous = path
	}

	return placements, cursor
}

// fillRow places a random number of extra cars beside the path lane.
// The first of them may get a turn lane, which then stays empty.
func (g *Generator) fillRow(path road.Lane, y float64) []Placement {
	free := make([]road.Lane, 0, len(g.road.Lanes)-1)
	for _, lane := range g.road.Lanes {
		if lane.Index != path.Index {
			free = append(free, lane)
		}
	}
	if len(free) == 0 {
		return nil
	}

	var row []Placement
	extra := g.rng.Intn(len(free))
	for i := 0; i < extra && len(free) > 0; i++ {
		k := g.rng.Intn(len(free))
		lane := free[k]
		free = append(free[:k], free[k+1:]...)

		turn := models.NoTurnLane
		if i == 0 {
			var choices []int
			for _, adj := range g.road.AdjacentLanes(lane) {
				if idx := indexOf(free, adj.Index); idx >= 0 {
					choices = append(choices, idx)
				}
			}
			if len(choices) > 0 {
				idx := choices[g.rng.Intn(len(choices))]
				turn = free[idx].Index
				free = append(free[:idx], free[idx+1:]...)
			}
		}

		row = append(row, Placement{Lane: lane.Index, Y: y, TurnLane: turn})
	}
	return row
}

func indexOf(lanes []road.Lane, index int) int {
	for i, lane := range lanes {
		if lane.Index == index {
			return i
		}
	}
	return -1
}
