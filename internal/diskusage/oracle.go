package diskusage

import "io/fs"

// SizeOracle reports how many bytes a regular file occupies on disk.
// Implementations return 0 when the platform query fails.
type SizeOracle interface {
	OnDisk(path string, info fs.FileInfo) uint64
}

// SizeOracleFunc adapts a function to SizeOracle.
type SizeOracleFunc func(path string, info fs.FileInfo) uint64

// OnDisk calls f.
func (f SizeOracleFunc) OnDisk(path string, info fs.FileInfo) uint64 {
	return f(path, info)
}

// ApparentSize is an oracle reporting the logical file length.
//
//nolint:gochecknoglobals // Stateless oracle
var ApparentSize = SizeOracleFunc(func(_ string, info fs.FileInfo) uint64 {
	if info.Size() < 0 {
		return 0
	}

	return uint64(info.Size())
})

// DefaultOracle returns the allocation-size oracle of the host platform.
func DefaultOracle() SizeOracle {
	return platformOracle{}
}
