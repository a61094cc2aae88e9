package coordinates

// ScoreScale maps node scores onto a visual range.
type ScoreScale struct {
	Scores   map[int64]float64
	MinScore float64
	MaxScore float64
}

// NewScoreScale records the extremes of scores.
func NewScoreScale(scores map[int64]float64) *ScoreScale {
	s := &ScoreScale{Scores: scores}

	first := true
	for _, score := range scores {
		if first {
			s.MinScore, s.MaxScore = score, score
			first = false
			continue
		}
		s.MinScore = min(s.MinScore, score)
		s.MaxScore = max(s.MaxScore, score)
	}
	return s
}

// Normalized returns the score of nodeID in the 0-1 range. Unknown nodes
// score 0; if every node has the same score they all score 1.
func (s *ScoreScale) Normalized(nodeID int64) float64 {
	score, exists := s.Scores[nodeID]
	if !exists {
		return 0.0
	}
	if s.MaxScore == s.MinScore {
		return 1.0
	}
	return (score - s.MinScore) / (s.MaxScore - s.MinScore)
}

// Radius converts the score of nodeID to a node radius for visualization.
func (s *ScoreScale) Radius(nodeID int64, minRadius, maxRadius float64) float64 {
	return minRadius + s.Normalized(nodeID)*(maxRadius-minRadius)
}
