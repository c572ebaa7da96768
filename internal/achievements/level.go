package achievements

// PointsPerLevel is the number of points between levels.
const PointsPerLevel = 1000

// Level is a learner's position on the points ladder.
type Level struct {
	Number          int     `json:"level"`
	Points          int     `json:"points"`
	ProgressPercent float64 `json:"progressPercent"`
}

// LevelFor computes the level for a point total. Level 1 starts at zero
// points; ProgressPercent is the share of the current level completed.
func LevelFor(points int) Level {
	points = max(points, 0)
	within := points % PointsPerLevel
	return Level{
		Number:          points/PointsPerLevel + 1,
		Points:          points,
		ProgressPercent: min(float64(within)/PointsPerLevel*100, 100),
	}
}
