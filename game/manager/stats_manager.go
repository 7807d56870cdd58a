package manager

import (
	"time"
)

// MaxRecords caps the run history kept in memory
const MaxRecords = 200

// RunRecord describes one finished run, from a reset to the next self collision
type RunRecord struct {
	SessionID string    `json:"sessionId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Level     uint8     `json:"level"`
	Length    int       `json:"length"`
}

// Duration returns how long the run lasted
func (r RunRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StatsManager keeps the history of finished runs for the current process.
// Nothing is written to disk.
type StatsManager struct {
	records    []RunRecord
	runsPlayed int
	bestLength int
	bestLevel  uint8
}

func NewStatsManager() *StatsManager {
	return &StatsManager{
		records: make([]RunRecord, 0),
	}
}

// AddRun records a finished run, dropping the oldest record past MaxRecords
func (sm *StatsManager) AddRun(rec RunRecord) {
	if len(sm.records) >= MaxRecords {
		copy(sm.records, sm.records[1:])
		sm.records = sm.records[:len(sm.records)-1]
	}
	sm.records = append(sm.records, rec)
	sm.runsPlayed++

	if rec.Length > sm.bestLength {
		sm.bestLength = rec.Length
	}
	if rec.Level > sm.bestLevel {
		sm.bestLevel = rec.Level
	}
}

// RunsPlayed counts every run since startup, including ones evicted from history
func (sm *StatsManager) RunsPlayed() int {
	return sm.runsPlayed
}

func (sm *StatsManager) BestLength() int {
	return sm.bestLength
}

func (sm *StatsManager) BestLevel() uint8 {
	return sm.bestLevel
}

// AverageLength averages the snake length over the kept history
func (sm *StatsManager) AverageLength() float64 {
	if len(sm.records) == 0 {
		return 0
	}

	total := 0
	for _, rec := range sm.records {
		total += rec.Length
	}
	return float64(total) / float64(len(sm.records))
}

// Last returns the most recent run, if any
func (sm *StatsManager) Last() (RunRecord, bool) {
	if len(sm.records) == 0 {
		return RunRecord{}, false
	}
	return sm.records[len(sm.records)-1], true
}

// GetRecords returns a copy of the kept history, oldest first
func (sm *StatsManager) GetRecords() []RunRecord {
	out := make([]RunRecord, len(sm.records))
	copy(out, sm.records)
	return out
}
