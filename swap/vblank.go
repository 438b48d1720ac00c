package swap

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// vblankErrorLimit caps how many vblank query failures are logged. Broken
// vblank support would otherwise flood the log once per frame for the
// lifetime of the process.
const vblankErrorLimit = 5

// FrameCount queries the vblank counter of a display output, returning the
// current timestamp in microseconds and the frame sequence number.
func (s *Scheduler) FrameCount(crtcIndex int) (ust uint64, msc uint32, err error) {
	ust, msc, err = s.device.WaitVBlank(crtcIndex)
	if err != nil {
		if s.vblankErrs < vblankErrorLimit {
			s.vblankErrs++
			s.logger.Error("get vblank counter failed",
				slog.Int("crtc", crtcIndex), slog.Any("error", err))
		}
		return 0, 0, errors.Wrap(err, "could not query vblank counter")
	}
	return ust, msc, nil
}
