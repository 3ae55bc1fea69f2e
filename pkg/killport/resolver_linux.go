//go:build linux

package killport

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/engity-com/killport/pkg/common"
	"github.com/engity-com/killport/pkg/errors"
)

func NewResolver() Resolver {
	return &procfsResolver{root: "/proc"}
}

// procfsResolver correlates socket inodes from /proc/net with the open file
// descriptor tables of all running processes.
type procfsResolver struct {
	root string
}

func (this *procfsResolver) Resolve(ctx context.Context, port uint16) ([]Killable, error) {
	inodes := this.collectTargetInodes(port)
	if len(inodes) == 0 {
		return nil, nil
	}
	return this.findProcessesByInodes(ctx, inodes)
}

// collectTargetInodes gathers the inodes of all sockets whose local port
// matches, across TCP/UDP and IPv4/IPv6. A family whose table cannot be read
// (IPv6 might be disabled) is skipped.
func (this *procfsResolver) collectTargetInodes(port uint16) map[uint64]struct{} {
	result := make(map[uint64]struct{})
	for _, table := range []string{"tcp", "tcp6", "udp", "udp6"} {
		this.collectInodesOfTable(filepath.Join(this.root, "net", table), port, result)
	}
	return result
}

func (this *procfsResolver) collectInodesOfTable(fn string, port uint16, into map[uint64]struct{}) {
	f, err := os.Open(fn)
	if err != nil {
		return
	}
	defer common.IgnoreCloseError(f)

	scanner := bufio.NewScanner(f)
	scanner.Scan() // header

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 10 {
			continue
		}

		// local_address is <hex ip>:<hex port>
		local := fields[1]
		sep := strings.LastIndexByte(local, ':')
		if sep < 0 {
			continue
		}
		candidate, err := strconv.ParseUint(local[sep+1:], 16, 16)
		if err != nil || uint16(candidate) != port {
			continue
		}

		inode, err := strconv.ParseUint(fields[9], 10, 64)
		if err != nil || inode == 0 {
			continue
		}
		into[inode] = struct{}{}
	}
}

// findProcessesByInodes scans every process's fd table for links to one of
// the given socket inodes. A process whose fd table cannot be read (exited
// mid-scan, or owned by another user) is skipped, never fatal. Each process
// is reported once, no matter how many matching fds it holds.
func (this *procfsResolver) findProcessesByInodes(ctx context.Context, inodes map[uint64]struct{}) ([]Killable, error) {
	entries, err := os.ReadDir(this.root)
	if err != nil {
		return nil, errors.System.Newf("cannot read %s: %w", this.root, err)
	}

	var result []Killable
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pid, err := strconv.ParseInt(entry.Name(), 10, 32)
		if err != nil {
			continue
		}
		if !this.ownsAnyInode(int32(pid), inodes) {
			continue
		}
		result = append(result, NewProcess(int32(pid), processName(ctx, int32(pid))))
	}
	return result, nil
}

func (this *procfsResolver) ownsAnyInode(pid int32, inodes map[uint64]struct{}) bool {
	fdDir := filepath.Join(this.root, strconv.Itoa(int(pid)), "fd")
	fds, err := os.ReadDir(fdDir)
	if err != nil {
		return false
	}
	for _, fd := range fds {
		link, err := os.Readlink(filepath.Join(fdDir, fd.Name()))
		if err != nil {
			continue
		}
		rest, ok := strings.CutPrefix(link, "socket:[")
		if !ok {
			continue
		}
		inode, err := strconv.ParseUint(strings.TrimSuffix(rest, "]"), 10, 64)
		if err != nil {
			continue
		}
		if _, ok := inodes[inode]; ok {
			return true
		}
	}
	return false
}
