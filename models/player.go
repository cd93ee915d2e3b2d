package models

import "time"

// PlayerStats represents the player's record over one session
type PlayerStats struct {
	RacesWon       int     // Finished first
	RacesLost      int     // Finished behind an opponent
	RacesCompleted int     // Reached the finish line
	RacesAborted   int     // Quit while racing
	WinRate        float64 // Percentage of completed races won

	BestTime        time.Duration // Fastest finish, zero until the first one
	BestScore       float64       // Highest checkpoint score total
	TopSpeedReached float64       // World units per frame
	Crashes         int           // Traffic cars wrecked by the player
}

// Player represents the person at the keyboard across races
type Player struct {
	Stats PlayerStats
}

// NewPlayer creates a player with an empty record
func NewPlayer() *Player {
	return &Player{}
}

// RecordFinish records a completed race
func (p *Player) RecordFinish(placement int, elapsed time.Duration, score float64) {
	if placement == 1 {
		p.RecordRaceWin()
	} else {
		p.RecordRaceLoss()
	}
	if p.Stats.BestTime == 0 || elapsed < p.Stats.BestTime {
		p.Stats.BestTime = elapsed
	}
	if score > p.Stats.BestScore {
		p.Stats.BestScore = score
	}
}

// RecordRaceWin records a race win
func (p *Player) RecordRaceWin() {
	p.Stats.RacesWon++
	p.Stats.RacesCompleted++
	p.UpdateWinRate()
}

// RecordRaceLoss records a race loss
func (p *Player) RecordRaceLoss() {
	p.Stats.RacesLost++
	p.Stats.RacesCompleted++
	p.UpdateWinRate()
}

// RecordAbort records a race the player quit
func (p *Player) RecordAbort() {
	p.Stats.RacesAborted++
}

// RecordCrash records a wrecked traffic car
func (p *Player) RecordCrash() {
	p.Stats.Crashes++
}

// UpdateWinRate recalculates the win rate
func (p *Player) UpdateWinRate() {
	if p.Stats.RacesCompleted > 0 {
		p.Stats.WinRate = float64(p.Stats.RacesWon) / float64(p.Stats.RacesCompleted) * 100.0
	}
}

// UpdateTopSpeed updates the top speed if a new record is set
func (p *Player) UpdateTopSpeed(speed float64) {
	if speed > p.Stats.TopSpeedReached {
		p.Stats.TopSpeedReached = speed
	}
}
