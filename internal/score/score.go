// Package score holds the score payload shared by the fetch layer and the
// presentation layer.
package score

import "fmt"

// Data is one fetched score with its range. It is compared by value.
type Data struct {
	Score    int `json:"score"`
	MinScore int `json:"minScoreValue"`
	MaxScore int `json:"maxScoreValue"`
}

// Percentage returns Score/MaxScore clamped to [0,1]. A non-positive
// MaxScore yields 0.
func (d Data) Percentage() float64 {
	if d.MaxScore <= 0 {
		return 0
	}
	p := float64(d.Score) / float64(d.MaxScore)
	return max(0, min(1, p))
}

// Consistent reports whether MinScore <= Score <= MaxScore.
func (d Data) Consistent() bool {
	return d.MinScore <= d.Score && d.Score <= d.MaxScore && d.MinScore <= d.MaxScore
}

// String formats the score as "score/max".
func (d Data) String() string {
	return fmt.Sprintf("%d/%d", d.Score, d.MaxScore)
}
