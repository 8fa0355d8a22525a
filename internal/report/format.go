package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// SizeWidth is the minimum width of the size column.
const SizeWidth = 10

//nolint:gochecknoglobals // Unit tables
var (
	binaryUnits  = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	decimalUnits = []string{"B", "kB", "MB", "GB", "TB", "PB", "EB"}
)

// FormatSize renders size with one decimal place and a binary (KiB) or
// decimal (kB) unit. Sizes below one unit are printed as whole bytes.
func FormatSize(size uint64, binary bool) string {
	base, units := float64(humanize.KByte), decimalUnits
	if binary {
		base, units = float64(humanize.KiByte), binaryUnits
	}

	if float64(size) < base {
		return fmt.Sprintf("%d %s", size, units[0])
	}

	value := float64(size)
	exp := 0

	for value >= base && exp < len(units)-1 {
		value /= base
		exp++
	}

	// 1023.96 KiB prints as 1.0 MiB, not 1024.0 KiB.
	if math.Round(value*10)/10 >= base && exp < len(units)-1 {
		value /= base
		exp++
	}

	return fmt.Sprintf("%.1f %s", value, units[exp])
}

// FormatBytes renders size as a plain byte count.
func FormatBytes(size uint64) string {
	return strconv.FormatUint(size, 10)
}
