package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/scorering/internal/score"
	"github.com/agbru/scorering/internal/ui"
)

const (
	SpinnerRefreshRate = 100 * time.Millisecond
	ProgressBarWidth   = 40
)

// Spinner is the part of a terminal spinner the plain runner drives.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	*spinner.Spinner
}

// UpdateSuffix changes the text while the spinner goroutine may be drawing.
func (rs realSpinner) UpdateSuffix(suffix string) {
	rs.Lock()
	defer rs.Unlock()
	rs.Suffix = suffix
}

// newSpinner is swapped out in tests.
var newSpinner = func(options ...spinner.Option) Spinner {
	return realSpinner{spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)}
}

// progressBar fills length cells in proportion to progress, clamped to
// [0, 1].
func progressBar(progress float64, length int) string {
	filled := int(max(0, min(progress, 1)) * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatScoreLine renders the bar and numeral for value out of
// data.MaxScore. The numeral is zero-padded to the width of the maximum.
func FormatScoreLine(value int, data score.Data) string {
	t := ui.GetCurrentTheme()
	fraction := score.Data{Score: value, MaxScore: data.MaxScore}.Percentage()
	width := len(fmt.Sprint(data.MaxScore))
	return fmt.Sprintf("%s%s%s %s%0*d%s out of %d",
		t.Primary, progressBar(fraction, ProgressBarWidth), t.Reset,
		t.Bold, width, value, t.Reset,
		data.MaxScore)
}
