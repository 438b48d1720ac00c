package drm

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// Kernel event types delivered on the card node.
const (
	eventVBlank       uint32 = 0x01
	eventFlipComplete uint32 = 0x02
)

const (
	eventHeaderLen = 8
	vblankEventLen = 24
)

// parseEvents walks a buffer of kernel events (u32 type, u32 length header,
// then length-8 bytes of payload) and dispatches flip-completion events to
// handler. Unknown event types are skipped by their declared length.
// Decoded field by field because the payload layout is a packed kernel ABI.
func parseEvents(buf []byte, handler FlipHandler) error {
	for len(buf) >= eventHeaderLen {
		typ := binary.NativeEndian.Uint32(buf[0:4])
		length := binary.NativeEndian.Uint32(buf[4:8])
		if length < eventHeaderLen || int(length) > len(buf) {
			return errors.Newf("malformed drm event: type %#x length %d with %d bytes left",
				typ, length, len(buf))
		}

		if typ == eventFlipComplete && length >= eventHeaderLen+vblankEventLen {
			payload := buf[eventHeaderLen:length]
			userData := binary.NativeEndian.Uint64(payload[0:8])
			tvSec := binary.NativeEndian.Uint32(payload[8:12])
			tvUsec := binary.NativeEndian.Uint32(payload[12:16])
			sequence := binary.NativeEndian.Uint32(payload[16:20])
			crtcID := binary.NativeEndian.Uint32(payload[20:24])
			if handler != nil {
				handler(userData, uint64(tvSec)*1000000+uint64(tvUsec), sequence, crtcID)
			}
		}

		buf = buf[length:]
	}
	return nil
}
