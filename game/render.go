package game

import (
	"github.com/golangdaddy/laneracer/collision"
	"github.com/golangdaddy/laneracer/models"
	"github.com/golangdaddy/laneracer/scoring"
)

// CheckpointHeight is the drawn thickness of a checkpoint line
const CheckpointHeight = 10

// render scrolls the background and hands every visible object to the presenter, HUD last
func (r *Race) render() {
	r.road.Scroll(r.camera.YOffset)
	for _, b := range r.road.Backdrops() {
		x, y := r.camera.Apply(b.X, b.Y)
		r.presenter.Present(models.Visual{Kind: models.KindRoad, Name: "background", X: x, Y: y, W: b.W, H: b.H})
	}

	for _, cp := range r.checkpoints.Remaining() {
		rect := collision.Rect{X: 0, Y: cp.Y, W: r.camera.W, H: CheckpointHeight}
		if !r.camera.CanSee(rect) {
			continue
		}
		x, y := r.camera.Apply(rect.X, rect.Y)
		r.presenter.Present(models.Visual{Kind: models.KindCheckpoint, Name: "checkpoint", X: x, Y: y, W: rect.W, H: rect.H})
	}

	for _, e := range r.world.Entities() {
		if e.Dead || e.Kind == models.KindRoad || !r.camera.CanSee(e.Bounds()) {
			continue
		}
		x, y := r.camera.Apply(e.X, e.Y)
		r.presenter.Present(models.Visual{ID: e.ID, Kind: e.Kind, Name: e.Name, X: x, Y: y, W: e.W, H: e.H, Frame: e.Frame})
	}

	r.presenter.PresentHUD(r.hud())
}

func (r *Race) hud() models.HUD {
	h := models.HUD{
		Countdown:  r.countdown,
		Placement:  scoring.Ordinal(r.placement),
		Score:      r.scorer.Total(),
		LastScore:  r.scorer.LastScore(),
		Speed:      -r.player.YV,
		Waiting:    r.state == StateWaiting,
		RaceNumber: r.number,
		Wins:       r.career.Stats.RacesWon,
		Completed:  r.career.Stats.RacesCompleted,
		WinRate:    r.career.Stats.WinRate,
	}
	if leader := r.leader(); leader != nil && r.placement > 1 {
		h.Leader = r.Driver(leader.ID)
	}
	if r.career.Stats.BestTime > 0 {
		h.BestTime = scoring.FormatElapsed(r.career.Stats.BestTime)
	}
	if r.timing {
		h.Elapsed = scoring.FormatElapsed(r.elapsed())
	}
	return h
}
