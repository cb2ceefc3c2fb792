// Package analysis summarizes archived sessions.
package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/SeamusWaldron/cubeless"
	"github.com/SeamusWaldron/cubeless/internal/storage"
)

// TrendReport contains trend analysis across multiple sessions.
type TrendReport struct {
	TotalSessions  int       `json:"total_sessions"`
	SolvedSessions int       `json:"solved_sessions"`
	SolveRate      float64   `json:"solve_rate"`
	DateRange      DateRange `json:"date_range"`

	// Averages over solved sessions
	AvgDurationMs float64 `json:"avg_duration_ms"`
	AvgMoves      float64 `json:"avg_moves"`
	AvgTPS        float64 `json:"avg_tps"`

	// Share of pressed moves that survive simplification, 0-100
	EfficiencyPct float64 `json:"efficiency_pct"`

	BestSession  *SessionStats `json:"best_session,omitempty"`
	WorstSession *SessionStats `json:"worst_session,omitempty"`

	// Reduction in move count from the first to the last quarter of solves
	ImprovementPct float64 `json:"improvement_pct"`

	// Rolling move-count averages over the last 5, 12 and 50 solves
	RollingAvgs map[int]float64 `json:"rolling_averages"`
}

// DateRange represents a date range.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SessionStats represents statistics for a single session in trend context.
type SessionStats struct {
	SessionID  string  `json:"session_id"`
	Timestamp  string  `json:"timestamp"`
	DurationMs int64   `json:"duration_ms"`
	MoveCount  int     `json:"move_count"`
	TPS        float64 `json:"tps"`
}

var rollingWindows = []int{5, 12, 50}

func statsFor(s storage.SessionRecord) SessionStats {
	durationMs := s.EndedAt.Sub(s.StartedAt).Milliseconds()
	return SessionStats{
		SessionID:  s.SessionID,
		Timestamp:  s.StartedAt.Format(time.RFC3339),
		DurationMs: durationMs,
		MoveCount:  s.MoveCount,
		TPS:        tps(s.MoveCount, durationMs),
	}
}

func tps(moves int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(moves) / (float64(durationMs) / 1000)
}

// AnalyzeTrends analyzes trends across sessions. Only solved sessions count
// towards averages, best and worst.
func AnalyzeTrends(sessions []storage.SessionRecord) *TrendReport {
	report := &TrendReport{
		TotalSessions: len(sessions),
		RollingAvgs:   make(map[int]float64),
	}

	if len(sessions) == 0 {
		return report
	}

	// Sort by time
	sorted := append([]storage.SessionRecord(nil), sessions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartedAt.Before(sorted[j].StartedAt)
	})

	report.DateRange = DateRange{
		Start: sorted[0].StartedAt.Format(time.RFC3339),
		End:   sorted[len(sorted)-1].StartedAt.Format(time.RFC3339),
	}

	var solved []SessionStats
	var pressed, kept int
	for _, s := range sorted {
		pressed += cubeless.CountMoves(s.Moves)
		kept += s.MoveCount
		if s.Solved {
			solved = append(solved, statsFor(s))
		}
	}

	report.SolvedSessions = len(solved)
	report.SolveRate = float64(len(solved)) / float64(len(sorted)) * 100
	if pressed > 0 {
		report.EfficiencyPct = float64(kept) / float64(pressed) * 100
	}

	if len(solved) == 0 {
		return report
	}

	var totalDuration, totalMoves int64
	var totalTPS float64
	best, worst := solved[0], solved[0]
	for _, s := range solved {
		totalDuration += s.DurationMs
		totalMoves += int64(s.MoveCount)
		totalTPS += s.TPS
		if s.MoveCount < best.MoveCount {
			best = s
		}
		if s.MoveCount > worst.MoveCount {
			worst = s
		}
	}

	n := float64(len(solved))
	report.AvgDurationMs = float64(totalDuration) / n
	report.AvgMoves = float64(totalMoves) / n
	report.AvgTPS = totalTPS / n
	report.BestSession = &best
	report.WorstSession = &worst
	report.ImprovementPct = calculateImprovement(solved)

	for _, w := range rollingWindows {
		if len(solved) >= w {
			report.RollingAvgs[w] = averageMoves(solved[len(solved)-w:])
		}
	}

	return report
}

func averageMoves(solves []SessionStats) float64 {
	if len(solves) == 0 {
		return 0
	}
	var sum int
	for _, s := range solves {
		sum += s.MoveCount
	}
	return float64(sum) / float64(len(solves))
}

// calculateImprovement compares the average move count of the first and
// last quarter of solves. Positive means fewer moves.
func calculateImprovement(solves []SessionStats) float64 {
	if len(solves) < 4 {
		return 0
	}

	quarterSize := len(solves) / 4
	firstAvg := averageMoves(solves[:quarterSize])
	lastAvg := averageMoves(solves[len(solves)-quarterSize:])

	if firstAvg <= 0 {
		return 0
	}

	return math.Round((firstAvg-lastAvg)/firstAvg*1000) / 10
}
