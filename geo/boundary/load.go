package boundary

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Source tells where a loaded curve came from.
type Source string

const (
	// SourceRemote marks a curve decoded from the fetched document.
	SourceRemote Source = "remote"
	// SourceSynthetic marks the fallback curve returned by Synthetic.
	SourceSynthetic Source = "synthetic"
)

// Loader fetches a boundary and falls back to Synthetic on any failure.
type Loader struct {
	Client *http.Client
	Logger *zap.Logger
	// Notice receives the human-readable fallback line. Nil discards it.
	Notice io.Writer
	// FallbackPoints is the sample count of the synthetic curve.
	FallbackPoints int
}

// Load fetches url and returns the decoded curve. Network errors, bad
// status codes, malformed documents and missing geometry are all treated the
// same: the error is logged and reported on Notice, and the synthetic curve
// is returned instead.
func (l Loader) Load(ctx context.Context, url string) (Curve, Source) {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c, err := Fetch(ctx, l.Client, url)
	if err == nil {
		logger.Debug("boundary fetched", zap.String("url", url), zap.Int("points", c.Len()))
		return c, SourceRemote
	}

	logger.Warn("boundary fetch failed, using synthetic curve", zap.String("url", url), zap.Error(err))
	if l.Notice != nil {
		_, _ = fmt.Fprintln(l.Notice, "Could not fetch detailed data, using sample data instead:", err)
	}
	return Synthetic(l.FallbackPoints), SourceSynthetic
}
