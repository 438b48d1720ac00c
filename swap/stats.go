package swap

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// BuildStatsString writes a JSON description of the scheduler state: the
// in-flight command count, resize latch and per-output scanout slots.
func (s *Scheduler) BuildStatsString(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	obj.Name("PendingFlips").Int(s.pendingFlips)
	obj.Name("HasResized").Bool(s.hasResized)

	slots := obj.Name("Scanouts").Array()
	for i := range s.scanouts.slots {
		slot := &s.scanouts.slots[i]
		if !slot.used() {
			continue
		}
		o := slots.Object()
		o.Name("X").Int(slot.X)
		o.Name("Y").Int(slot.Y)
		o.Name("Width").Int(int(slot.Width))
		o.Name("Height").Int(int(slot.Height))
		o.Name("Valid").Bool(slot.Valid)
		if slot.BO != nil {
			o.Name("Handle").Int(int(slot.BO.Handle()))
		}
		o.End()
	}
	slots.End()
}
