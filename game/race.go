package game

import (
	"log"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/golangdaddy/laneracer/collision"
	"github.com/golangdaddy/laneracer/config"
	"github.com/golangdaddy/laneracer/lanecontroller"
	"github.com/golangdaddy/laneracer/models"
	"github.com/golangdaddy/laneracer/pacing"
	"github.com/golangdaddy/laneracer/pkg/data"
	"github.com/golangdaddy/laneracer/road"
	"github.com/golangdaddy/laneracer/scoring"
	"github.com/golangdaddy/laneracer/traffic"
)

// GoLabel is shown when the countdown ends
const GoLabel = "Go!!"

// Race owns everything taking part in one race and drives it frame by frame
type Race struct {
	ID        string // Changes on every reset
	cfg       *config.Config
	presenter Presenter
	cues      CuePlayer
	rng       *rand.Rand

	state    State
	first    bool // No race has been started yet, the initial setup is reused
	finished bool // The host should stop
	number   int  // Races set up so far

	world       *models.World
	road        *road.Road
	lanes       *lanecontroller.LaneController
	pacer       *pacing.Controller
	checkpoints *scoring.Queue
	scorer      *scoring.Scorer
	camera      models.Camera
	player      *models.Entity
	opponents   []*models.Entity
	drivers     map[int]string // Opponent names by entity ID
	career      *models.Player

	now        time.Time
	phaseStart time.Time // When the countdown or the playing phase began
	countdown  string
	placement  int

	timing    bool // The race clock has started
	stopped   bool // The race clock is frozen at raceEnd
	raceStart time.Time
	raceEnd   time.Time

	prevInput Input
}

// New creates a race in the waiting state, ready to be started with Confirm
func New(cfg *config.Config, presenter Presenter, cues CuePlayer, rng *rand.Rand) *Race {
	r := &Race{
		cfg:       cfg,
		presenter: presenter,
		cues:      cues,
		rng:       rng,
		state:     StateWaiting,
		first:     true,
		career:    models.NewPlayer(),
	}
	r.reset()
	return r
}

// State returns the current phase
func (r *Race) State() State {
	return r.state
}

// IsFinished reports whether the player asked to leave the game
func (r *Race) IsFinished() bool {
	return r.finished
}

// World returns the arena of the current race
func (r *Race) World() *models.World {
	return r.world
}

// Player returns the player's car
func (r *Race) Player() *models.Entity {
	return r.player
}

// Career returns the player's record over every race so far
func (r *Race) Career() *models.Player {
	return r.career
}

// Driver returns the name of the opponent with the given entity ID
func (r *Race) Driver(id int) string {
	return r.drivers[id]
}

// reset builds a fresh course: road, grid, traffic, checkpoints, pacing and camera
func (r *Race) reset() {
	cfg := r.cfg
	r.ID = uuid.NewString()
	r.number++

	r.world = models.NewWorld()
	x := float64(cfg.Window.Width)/2 - cfg.Road.Width/2
	r.road = road.New(x, cfg.Road.Width, cfg.Road.Length, cfg.Road.Lanes, float64(cfg.Window.Width), float64(cfg.Window.Height))
	r.lanes = lanecontroller.New(r.world, r.road)
	r.world.Add(models.NewRoadEntity(r.road.Bounds()))

	banner := 250.0
	r.world.Add(models.NewMarker("start", collision.Rect{X: r.road.X, Y: -banner, W: r.road.Width, H: banner}))
	r.world.Add(models.NewMarker("finish", collision.Rect{X: r.road.X, Y: -r.road.Length - banner, W: r.road.Width, H: banner}))

	r.opponents = r.opponents[:0]
	for i := 0; i < cfg.Road.Racers; i++ {
		lane, _ := r.road.Lane(i)
		if i == cfg.Road.PlayerLane {
			r.player = r.world.Add(models.NewVehicle(models.KindPlayer, cfg.Player, lane.Center()-cfg.Player.Width/2, -cfg.Player.Length))
			r.cues.Play(models.CueEngine)
			continue
		}
		opp := r.world.Add(models.NewVehicle(models.KindAIOpponent, cfg.Opponent, lane.Center()-cfg.Opponent.Width/2, -cfg.Opponent.Length))
		r.world.Reserve(opp.ID, lane.Index)
		r.opponents = append(r.opponents, opp)
	}
	r.drivers = make(map[int]string, len(r.opponents))
	for i, name := range data.Drivers(r.number-1, len(r.opponents)) {
		r.drivers[r.opponents[i].ID] = name
	}

	r.camera = models.NewCamera(float64(cfg.Window.Width), float64(cfg.Window.Height))
	r.camera.Follow(r.player)

	placed := r.placeTraffic()

	r.pacer = pacing.New(r.rng, r.opponents, cfg.Road.Length, cfg.Player.Speed, cfg.Pacing)
	r.checkpoints = scoring.NewQueue(cfg.Road.Length, cfg.Race.CheckpointInterval)
	ideal := scoring.IdealInterval(cfg.Road.Length, cfg.Player.Speed, float64(cfg.Window.FPS), r.checkpoints.Len())
	r.scorer = scoring.NewScorer(cfg.Scoring, ideal)

	r.countdown = ""
	r.placement = 1
	r.timing, r.stopped = false, false

	log.Printf("race %s: reset #%d with %d traffic cars, %d entities and %d checkpoints", r.ID, r.number, placed, r.world.Len(), r.checkpoints.Len())
}

// placeTraffic seeds the course with background traffic and returns how many cars were placed
func (r *Race) placeTraffic() int {
	cfg := r.cfg
	params := traffic.Params{
		StartOffset:     cfg.Layout.StartOffset,
		Spacing:         cfg.Layout.Spacing,
		CarLength:       cfg.Traffic.Length,
		PlayerSpeed:     cfg.Player.Speed,
		PlayerTurnSpeed: cfg.Player.TurnSpeed,
		TrafficSpeed:    cfg.Traffic.Speed,
	}
	placements, _ := traffic.NewGenerator(r.road, params, r.rng).Generate()
	for _, p := range placements {
		lane, ok := r.road.Lane(p.Lane)
		if !ok {
			continue
		}
		car := models.NewVehicle(models.KindTraffic, cfg.Traffic, lane.Center()-cfg.Traffic.Width/2, p.Y-cfg.Traffic.Length/2)
		car.TurnLane = p.TurnLane
		r.world.Add(car)
	}
	return len(placements)
}

// Advance runs one frame. Only a configuration error is returned, and it is fatal.
func (r *Race) Advance(ctx FrameContext) error {
	r.now = ctx.Now
	confirm := ctx.Input.Confirm && !r.prevInput.Confirm
	quit := ctx.Input.Quit && !r.prevInput.Quit
	r.prevInput = ctx.Input

	switch r.state {
	case StateWaiting:
		r.waiting(confirm, quit)
	case StateCountdown:
		r.counting()
	case StatePlaying:
		if err := r.playing(ctx.Input, quit); err != nil {
			return err
		}
	}
	return nil
}

func (r *Race) waiting(confirm, quit bool) {
	switch {
	case quit:
		r.finished = true
		log.Printf("race %s: quit", r.ID)
	case confirm:
		if !r.first {
			r.reset()
		}
		r.first = false
		r.phaseStart = r.now
		r.state = StateCountdown
		r.countdown = ""
	}
	r.camera.Follow(r.player)
	r.render()
}

func (r *Race) counting() {
	total := r.cfg.Race.Countdown.Std()
	elapsed := r.now.Sub(r.phaseStart)
	if elapsed >= total {
		r.countdown = GoLabel
		r.state = StatePlaying
		r.phaseStart = r.now
		r.startTimer()
		log.Printf("race %s: started", r.ID)
	} else {
		r.countdown = strconv.Itoa(int(math.Ceil((total - elapsed).Seconds())))
	}
	r.camera.Follow(r.player)
	r.render()
}

func (r *Race) playing(in Input, quit bool) error {
	if quit {
		r.stopTimer()
		r.state = StateWaiting
		r.countdown = ""
		r.career.RecordAbort()
		log.Printf("race %s: aborted after %s", r.ID, scoring.FormatElapsed(r.elapsed()))
		r.render()
		return nil
	}
	if r.now.Sub(r.phaseStart) >= r.cfg.Race.GoLabel.Std() {
		r.countdown = ""
	}

	if err := r.collide(); err != nil {
		return err
	}
	r.decide(in)
	r.integrate()
	r.career.UpdateTopSpeed(-r.player.YV)
	r.world.Prune()
	r.score()
	r.render()
	return nil
}

// decide runs every decision of the frame: camera, placement, pacing, per-kind behaviour and steering
func (r *Race) decide(in Input) {
	r.camera.Follow(r.player)
	r.placement = scoring.Placement(r.player.Y, r.opponentYs())
	r.pacer.Update(r.world, r.player, r.camera)

	for _, e := range r.world.Entities() {
		if e.Dead {
			continue
		}
		if b, ok := behaviours[e.Kind]; ok && b.act != nil {
			b.act(r, e)
		}
	}

	steer(r.player, in)
}

// steer sets the player's lateral velocity from the arrow keys, both or neither going straight
func steer(p *models.Entity, in Input) {
	switch {
	case in.Left == in.Right:
		p.XV = 0
	case in.Left:
		p.XV = -p.TurnSpeed
	case in.Right:
		p.XV = p.TurnSpeed
	}
}

// integrate moves every vehicle one frame and completes lane changes
func (r *Race) integrate() {
	friction := r.cfg.Collision.Friction
	delay := r.cfg.Collision.Delay.Std()
	for _, e := range r.world.Entities() {
		if e.Dead || !e.Kind.IsVehicle() {
			continue
		}
		if e.Step(r.now, friction, delay) && e.Kind == models.KindAIOpponent {
			r.lanes.FinishLaneChange(e)
		}
	}
}

// score evaluates checkpoint crossings, the difficulty rule and the finish line
func (r *Race) score() {
	if _, ok := r.checkpoints.Pass(r.player.Y); ok {
		r.scorer.Cross(r.now)
		speed, challenge := r.scorer.Adjust(r.cfg.Player.Speed)
		r.player.SetMaxSpeed(speed)
		if challenge {
			if car, ok := r.lanes.NearestTurnCandidate(r.player, r.cfg.Layout.ChallengeMinDistance); ok {
				r.turnTraffic(car)
			}
		}
	}

	if r.player.Y < -r.road.Length-r.player.H {
		r.stopTimer()
		r.state = StateWaiting
		r.career.RecordFinish(r.placement, r.elapsed(), r.scorer.Total())
		log.Printf("race %s: finished %s in %s with score %.3f", r.ID, scoring.Ordinal(r.placement), scoring.FormatElapsed(r.elapsed()), r.scorer.Total())
		if leader := r.leader(); leader != nil && r.placement > 1 {
			log.Printf("race %s: won by %s", r.ID, r.Driver(leader.ID))
		}
	}
}

// leader returns the opponent furthest up the road
func (r *Race) leader() *models.Entity {
	var best *models.Entity
	for _, o := range r.opponents {
		if best == nil || o.Y < best.Y {
			best = o
		}
	}
	return best
}

// turnTraffic makes a traffic car swerve into its turn lane with a tyre skid
func (r *Race) turnTraffic(car *models.Entity) {
	if r.lanes.Turn(car) {
		r.cues.Play(models.CueSkid)
		r.cues.FadeOut(models.CueSkid, r.cfg.Race.SkidFade.Std())
	}
}

func (r *Race) opponentYs() []float64 {
	ys := make([]float64, 0, len(r.opponents))
	for _, o := range r.opponents {
		ys = append(ys, o.Y)
	}
	return ys
}

func (r *Race) startTimer() {
	r.timing = true
	r.stopped = false
	r.raceStart = r.now
}

func (r *Race) stopTimer() {
	if r.timing && !r.stopped {
		r.stopped = true
		r.raceEnd = r.now
	}
}

// elapsed returns the race clock, frozen once the race has ended
func (r *Race) elapsed() time.Duration {
	if !r.timing {
		return 0
	}
	if r.stopped {
		return r.raceEnd.Sub(r.raceStart)
	}
	return r.now.Sub(r.raceStart)
}
