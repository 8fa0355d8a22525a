//go:build !windows

package diskusage

import (
	"io/fs"
	"syscall"
)

// blockSize is the unit of Stat_t.Blocks, independent of Stat_t.Blksize.
const blockSize = 512

// platformOracle reads the allocated block count from lstat data.
type platformOracle struct{}

func (platformOracle) OnDisk(_ string, info fs.FileInfo) uint64 {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok || stat.Blocks < 0 {
		return 0
	}

	return uint64(stat.Blocks) * blockSize
}
