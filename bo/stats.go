package bo

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// BuildStatsString writes a JSON array describing every live buffer object,
// for diagnostic dumps of the driver state.
func (d *Device) BuildStatsString(writer *jwriter.Writer) {
	s := writer.Array()
	defer s.End()

	d.objects.Iter(func(handle uint32, o *Object) bool {
		obj := s.Object()
		o.printParameters(&obj)
		obj.End()
		return false
	})
}

func (o *Object) printParameters(json *jwriter.ObjectState) {
	json.Name("Handle").Int(int(o.handle))
	json.Name("FB").Int(int(o.fbID))
	json.Name("Width").Int(int(o.width))
	json.Name("Height").Int(int(o.height))
	json.Name("Pitch").Int(int(o.pitch))
	json.Name("Size").Int(int(o.size))
	json.Name("RefCount").Int(o.refcnt)
	json.Name("Dirty").Bool(o.dirty)

	if o.depth != 0 {
		json.Name("Depth").Int(int(o.depth))
	} else {
		json.Name("Format").String(o.format.String())
	}

	if o.acquireCnt > 0 {
		json.Name("AcquireDepth").Int(o.acquireCnt)
		json.Name("Exclusive").Bool(o.exclusive)
	}
}
