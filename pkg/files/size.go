package files

import (
	"fmt"
	"strconv"
)

// sizeUnits is the base-1024 ladder; YiB catches whatever is still left.
var sizeUnits = []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB"}

// FormatSize renders a byte count as a human readable magnitude. Counts
// below 1 KiB print as the exact integer with no unit; scaled values carry
// exactly one decimal place and a unit label.
func FormatSize(size uint64) string {
	if size < 1024 {
		return strconv.FormatUint(size, 10)
	}
	n := float64(size)
	for _, unit := range sizeUnits {
		n /= 1024
		if n < 1024 {
			return fmt.Sprintf("%.1f %s", n, unit)
		}
	}
	return fmt.Sprintf("%.1f YiB", n/1024)
}
