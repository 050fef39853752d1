package preflight

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

// CheckDirectoryAccess verifies that the directory exists and is
// readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckDiskSpace verifies the filesystem holding path has at least minBytes
// free.
func CheckDiskSpace(name, path string, minBytes uint64) Result {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	free := stat.Bavail * uint64(stat.Bsize)
	if free < minBytes {
		return Result{Name: name, Detail: fmt.Sprintf("%s (%d MiB free, need %d MiB)",
			path, free>>20, minBytes>>20)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d MiB free)", path, free>>20)}
}

// CheckBinary verifies a configured binary can be found on PATH.
func CheckBinary(name, binary string, optional bool) Result {
	result := Result{Name: name, Optional: optional}
	binary = strings.TrimSpace(binary)
	if binary == "" {
		result.Detail = "command not configured"
		return result
	}
	if _, err := exec.LookPath(binary); err != nil {
		result.Detail = fmt.Sprintf("binary %q not found", binary)
		return result
	}
	result.Passed = true
	result.Detail = binary
	return result
}

// CheckCommand verifies the executable of a full command line, such as the
// model commands which carry their own flags.
func CheckCommand(name, command string, optional bool) Result {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return Result{Name: name, Optional: optional, Detail: "command not configured"}
	}
	return CheckBinary(name, fields[0], optional)
}
