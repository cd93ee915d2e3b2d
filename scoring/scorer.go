package scoring

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Config tunes checkpoint scoring and the difficulty rule
type Config struct {
	MaxScore   float64 `json:"max_score"`   // Score for a checkpoint reached at the ideal pace or faster
	Window     int     `json:"window"`      // How many recent scores the average covers
	Difficulty float64 `json:"difficulty"`  // Average score from which the race gets harder
	BoostScale float64 `json:"boost_scale"` // Extra player speed per point of average above Difficulty
}

// DefaultConfig returns the scoring the game ships with
func DefaultConfig() Config {
	return Config{
		MaxScore:   5,
		Window:     5,
		Difficulty: 4,
		BoostScale: 5,
	}
}

// IdealInterval is the time between two checkpoints for a player holding top speed the whole race
func IdealInterval(length, playerSpeed, fps float64, checkpoints int) time.Duration {
	if playerSpeed <= 0 || fps <= 0 || checkpoints <= 0 {
		return 0
	}
	seconds := length / playerSpeed / fps / float64(checkpoints)
	return time.Duration(seconds * float64(time.Second))
}

// Scorer rates each checkpoint crossing against the ideal pace
type Scorer struct {
	cfg    Config
	ideal  time.Duration
	last   time.Time // Time of the previous crossing
	timing bool      // The first crossing has started the clock

	recent    []float64 // Sliding window, oldest first
	total     float64
	lastScore float64
}

// NewScorer creates a scorer for the given ideal time between checkpoints
func NewScorer(cfg Config, ideal time.Duration) *Scorer {
	return &Scorer{cfg: cfg, ideal: ideal}
}

// Cross records a checkpoint crossing.
// The first crossing only starts the clock; later ones return the score earned.
func (s *Scorer) Cross(now time.Time) (float64, bool) {
	if !s.timing {
		s.timing = true
		s.last = now
		return 0, false
	}

	score := s.score(now.Sub(s.last))
	s.last = now

	s.total += score
	s.lastScore = score
	s.recent = append(s.recent, score)
	if len(s.recent) > s.cfg.Window {
		s.recent = s.recent[1:]
	}
	return score, true
}

// score rates one interval, rounded to three decimals and capped at MaxScore
func (s *Scorer) score(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return s.cfg.MaxScore
	}
	score := round3(s.cfg.MaxScore * s.ideal.Seconds() / elapsed.Seconds())
	return math.Min(score, s.cfg.MaxScore)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Full reports whether the window holds enough scores to judge the player
func (s *Scorer) Full() bool {
	return s.cfg.Window > 0 && len(s.recent) >= s.cfg.Window
}

// Average returns the mean of the scores in the window, zero when empty
func (s *Scorer) Average() float64 {
	if len(s.recent) == 0 {
		return 0
	}
	return stat.Mean(s.recent, nil)
}

// Adjust applies the difficulty rule to the player's base speed.
// A player averaging at least Difficulty gets a faster car and more swerving traffic.
func (s *Scorer) Adjust(base float64) (speed float64, challenge bool) {
	if !s.Full() {
		return base, false
	}
	avg := s.Average()
	if avg >= s.cfg.Difficulty {
		return base + (avg-s.cfg.Difficulty)*s.cfg.BoostScale, true
	}
	return base, false
}

// Total returns the score of the race so far
func (s *Scorer) Total() float64 {
	return s.total
}

// LastScore returns the score of the latest checkpoint
func (s *Scorer) LastScore() float64 {
	return s.lastScore
}
