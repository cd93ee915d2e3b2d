package game

import (
	"fmt"
	"math"

	"github.com/golangdaddy/laneracer/collision"
	"github.com/golangdaddy/laneracer/models"
)

// behaviour is what one kind of entity does when hit and on every frame
type behaviour struct {
	hit func(r *Race, self, other *models.Entity)
	act func(r *Race, self *models.Entity)
}

var behaviours = map[models.Kind]behaviour{
	models.KindPlayer:     {hit: hitPlayer},
	models.KindAIOpponent: {hit: hitOpponent, act: actOpponent},
	models.KindTraffic:    {hit: hitTraffic, act: actTraffic},
	models.KindExplosion:  {act: actExplosion},
}

// collide tests every pair of live entities once and lets both sides react.
// Traffic never collides with traffic, nor with anything while off screen.
func (r *Race) collide() error {
	entities := r.world.Entities()
	for i := 0; i < len(entities); i++ {
		a := entities[i]
		for j := i + 1; j < len(entities); j++ {
			b := entities[j]
			if !r.collides(a, b) {
				continue
			}
			hit, err := collision.Check(a, b)
			if err != nil {
				return fmt.Errorf("race %s: %s against %s: %w", r.ID, a.Name, b.Name, err)
			}
			if !hit {
				continue
			}
			if h := behaviours[a.Kind].hit; h != nil {
				h(r, a, b)
			}
			if h := behaviours[b.Kind].hit; h != nil {
				h(r, b, a)
			}
		}
	}
	return nil
}

// collides filters the pairs worth testing
func (r *Race) collides(a, b *models.Entity) bool {
	if a.Dead || b.Dead {
		return false
	}
	if a.Kind == models.KindTraffic && b.Kind == models.KindTraffic {
		return false
	}
	for _, e := range [2]*models.Entity{a, b} {
		if e.Kind == models.KindTraffic && !r.camera.CanSee(e.Bounds()) {
			return false
		}
	}
	return true
}

// hitPlayer slows the player on the road edge or traffic and pushes opponents apart
func hitPlayer(r *Race, self, other *models.Entity) {
	switch other.Kind {
	case models.KindRoad, models.KindTraffic:
		self.Hit(r.now)
	case models.KindAIOpponent:
		pushBack(self, other)
	}
}

// pushBack separates the player from an opponent by undoing the last move,
// one axis at a time: the player's x, the player's y, the opponent's x, the opponent's y.
func pushBack(p, o *models.Entity) {
	overlap := func() bool { return collision.BoxBox(p.Bounds(), o.Bounds()) }

	p.X -= p.XV
	if !overlap() {
		return
	}
	p.X += p.XV

	p.Y -= p.YV
	if !overlap() {
		return
	}
	p.Y += p.YV

	o.X -= o.XV
	if !overlap() {
		return
	}
	o.X += o.XV

	o.Y -= o.YV
	if !overlap() {
		return
	}
	o.Y += o.YV
}

// hitOpponent slows an opponent that ran into traffic
func hitOpponent(r *Race, self, other *models.Entity) {
	if other.Kind == models.KindTraffic {
		self.Hit(r.now)
	}
}

func actOpponent(r *Race, self *models.Entity) {
	r.lanes.Drive(self)
}

// hitTraffic blows up a traffic car hit by a racer
func hitTraffic(r *Race, self, other *models.Entity) {
	if other.Kind != models.KindPlayer && other.Kind != models.KindAIOpponent {
		return
	}
	self.Dead = true
	if other.Kind == models.KindPlayer {
		r.career.RecordCrash()
	}
	boom := r.world.Spawn(models.NewExplosion(self.CenterX(), self.CenterY(), r.cfg.Explosion.Size, r.now))
	if r.camera.CanSee(boom.Bounds()) {
		r.cues.Play(models.CueExplosion)
		r.cues.FadeOut(models.CueExplosion, r.cfg.Race.ExplosionFade.Std())
	}
}

// actTraffic drops traffic the player has left behind and swerves it when the player closes in
func actTraffic(r *Race, self *models.Entity) {
	if self.Y > r.camera.Bottom()+self.H {
		self.Dead = true
		return
	}
	if self.TurnLane == models.NoTurnLane || self.Moving {
		return
	}
	if d := self.Y - r.player.Y; d < 0 && -d <= r.cfg.Layout.TurnTriggerDistance {
		r.turnTraffic(self)
	}
}

// actExplosion advances the animation and ends it after the last frame
func actExplosion(r *Race, self *models.Entity) {
	frameTime := r.cfg.Explosion.FrameTime.Std()
	frame := int(math.Floor(float64(r.now.Sub(self.Spawned)) / float64(frameTime)))
	if frame >= r.cfg.Explosion.Frames {
		self.Frame = r.cfg.Explosion.Frames - 1
		self.Dead = true
		return
	}
	self.Frame = frame
}
