package lanecontroller

import (
	"math"

	"github.com/golangdaddy/laneracer/models"
	"github.com/golangdaddy/laneracer/road"
)

// FreeLaneScore is the score of a lane with nothing ahead within sight
const FreeLaneScore = 300.0

// ReservedLaneScore is forced on a lane another opponent is moving into
const ReservedLaneScore = -1.0

// LaneController steers AI opponents and traffic between the lanes of one road.
// Lane reservations are stored in the World, keyed by entity ID.
type LaneController struct {
	World *models.World
	Road  *road.Road
}

// New creates a lane controller for a race
func New(w *models.World, rd *road.Road) *LaneController {
	return &LaneController{World: w, Road: rd}
}

// Candidates returns the lanes an opponent may pick from: its current lane first, then the adjacent ones.
// It returns nil when the car is not on the road.
func (lc *LaneController) Candidates(self *models.Entity) []road.Lane {
	current, ok := lc.Road.LaneObjectIsIn(self.Bounds())
	if !ok {
		return nil
	}
	return append([]road.Lane{current}, lc.Road.AdjacentLanes(current)...)
}

// CongestionScores scores each candidate lane by the distance to the nearest obstacle ahead in it.
// Obstacles more than two car widths behind are ignored. A lane reserved by another
// opponent within one car width scores ReservedLaneScore.
func (lc *LaneController) CongestionScores(self *models.Entity, lanes []road.Lane) []float64 {
	scores := make([]float64, len(lanes))
	obstacles := lc.obstacles(self)

	for i, lane := range lanes {
		scores[i] = FreeLaneScore
		for _, o := range obstacles {
			dist := self.Y - o.Y
			if dist < -self.W*2 {
				continue
			}
			if o.Kind == models.KindAIOpponent && dist < self.W && lc.World.HasReserved(o.ID, lane.Index) {
				scores[i] = ReservedLaneScore
				break
			}
			if !lane.IsObjectIn(o.Bounds()) {
				continue
			}
			scores[i] = math.Min(scores[i], dist)
		}
	}

	return scores
}

// obstacles returns every live vehicle and explosion other than self
func (lc *LaneController) obstacles(self *models.Entity) []*models.Entity {
	var out []*models.Entity
	for _, e := range lc.World.Entities() {
		if e == self || e.Dead {
			continue
		}
		if e.Kind.IsVehicle() || e.Kind == models.KindExplosion {
			out = append(out, e)
		}
	}
	return out
}

// ChooseLane picks the least congested candidate, the first one on ties
func (lc *LaneController) ChooseLane(self *models.Entity) (road.Lane, bool) {
	lanes := lc.Candidates(self)
	if len(lanes) == 0 {
		return road.Lane{}, false
	}

	scores := lc.CongestionScores(self, lanes)
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return lanes[best], true
}

// StartLaneChange reserves the lane and sends the car sideways toward its center
func (lc *LaneController) StartLaneChange(self *models.Entity, lane road.Lane) {
	lc.World.Reserve(self.ID, lane.Index)
	self.SteerTo(lane.Center() - self.W/2)
}

// FinishLaneChange releases the lane the car has just left.
// The car always keeps the lane it now sits in.
func (lc *LaneController) FinishLaneChange(self *models.Entity) {
	if len(lc.World.Reservations(self.ID)) < 2 {
		return
	}
	lc.World.ReleaseOldest(self.ID)
}

// Drive runs one frame of an opponent's lane policy.
// A cruising opponent re-evaluates its lane; one already changing lanes keeps going.
func (lc *LaneController) Drive(self *models.Entity) {
	if self.Moving {
		return
	}
	lane, ok := lc.ChooseLane(self)
	if !ok {
		return
	}
	lc.StartLaneChange(self, lane)
}

// Turn sends a traffic car into its assigned turn lane.
// A turn is used up once taken. It returns false when the car has no turn lane,
// is already moving or already sits in that lane.
func (lc *LaneController) Turn(traffic *models.Entity) bool {
	if !lc.canTurn(traffic) {
		return false
	}
	lane, _ := lc.Road.Lane(traffic.TurnLane)
	traffic.SteerTo(lane.Center() - traffic.W/2)
	traffic.TurnLane = models.NoTurnLane
	return true
}

// canTurn reports whether the car still has a turn lane it can swerve into
func (lc *LaneController) canTurn(traffic *models.Entity) bool {
	if traffic.Dead || traffic.TurnLane == models.NoTurnLane || traffic.Moving {
		return false
	}
	lane, ok := lc.Road.Lane(traffic.TurnLane)
	return ok && !lane.IsObjectIn(traffic.Bounds())
}

// NearestTurnCandidate finds the traffic car ahead of the player, further than minDistance,
// that is closest to the player and can still take its turn lane.
func (lc *LaneController) NearestTurnCandidate(player *models.Entity, minDistance float64) (*models.Entity, bool) {
	var nearest *models.Entity
	best := math.Inf(1)
	for _, e := range lc.World.OfKind(models.KindTraffic) {
		if !lc.canTurn(e) {
			continue
		}
		d := player.Y - e.Y
		if d > minDistance && d < best {
			best = d
			nearest = e
		}
	}
	return nearest, nearest != nil
}
