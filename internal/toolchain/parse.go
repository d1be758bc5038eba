package toolchain

import (
	"strconv"

	"fortio.org/safecast"
)

// parsePos converts a tool-reported line/column string to uint32,
// clamping anything unparseable or out of range to 0.
func parsePos(s string) uint32 {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	u, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0
	}
	return u
}
