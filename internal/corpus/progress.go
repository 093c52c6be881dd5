package corpus

import (
	"fmt"
	"log/slog"
)

// reportStep is how many bytes pass between progress log events.
const reportStep = 32 << 20 // 32 MiB

// progressWriter counts bytes flowing through an io.Copy and logs the
// transferred amount as megabytes, with a percentage when the total size
// is known up front.
type progressWriter struct {
	total      int64 // -1 when Content-Length is unknown
	written    int64
	nextReport int64
	logger     *slog.Logger
}

func newProgressWriter(total int64, logger *slog.Logger) *progressWriter {
	return &progressWriter{total: total, nextReport: reportStep, logger: logger}
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.written += int64(len(b))
	if p.written >= p.nextReport {
		p.report()
		p.nextReport += reportStep
	}
	return len(b), nil
}

// finish emits a final progress event so short transfers still report.
func (p *progressWriter) finish() {
	p.report()
}

func (p *progressWriter) report() {
	mb := float64(p.written) / (1 << 20)
	if p.total > 0 {
		percent := p.written * 100 / p.total
		totalMB := float64(p.total) / (1 << 20)
		p.logger.Info("download progress",
			"percent", percent,
			"transferred", fmt.Sprintf("%.1f/%.1f MB", mb, totalMB))
		return
	}
	p.logger.Info("download progress", "transferred", fmt.Sprintf("%.1f MB", mb))
}
