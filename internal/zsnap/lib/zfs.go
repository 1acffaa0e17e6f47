package lib

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tvandijk/zsnap/internal/zsnap/types"
)

const zfsBin = "zfs"

var (
	// ErrInvalidDataset covers both malformed dataset identifiers and
	// failed list invocations; the zfs tool does not let us distinguish a
	// bad name from a missing dataset at this layer.
	ErrInvalidDataset = errors.New("invalid dataset")

	// ErrInvalidSnapshotName is returned when a snapshot name fails the
	// allowed-character pattern. Only reachable if zfs returns unexpected
	// data.
	ErrInvalidSnapshotName = errors.New("invalid snapshot name")
)

var (
	datasetPattern  = regexp.MustCompile(`^[A-Za-z0-9_\-/.]+$`)
	snapNamePattern = regexp.MustCompile(`^[A-Za-z0-9_:.\-]+$`)

	// One line of `zfs list -p -H -o name,creation`: the snapshot name is
	// everything after the @, the trailing digits are the Unix creation
	// timestamp.
	listLinePattern = regexp.MustCompile(`^\S+@(\S+)\s+(\d+)\s*$`)
)

// ValidDataset reports whether name is a well-formed dataset identifier.
func ValidDataset(name string) bool {
	return name != "" && datasetPattern.MatchString(name)
}

// ValidSnapshotName reports whether name is a well-formed snapshot name.
func ValidSnapshotName(name string) bool {
	return name != "" && snapNamePattern.MatchString(name)
}

// Commander runs the external zfs binary. Output is used for read-only
// queries, Run for destructive commands. The production implementation
// shells out; tests substitute a fake.
type Commander interface {
	Output(args ...string) ([]byte, error)
	Run(args ...string) error
}

// execCommander invokes zfs through os/exec, blocking until completion.
// stderr is captured into the returned error so the tool's own message
// reaches the user.
type execCommander struct{}

func (execCommander) Output(args ...string) ([]byte, error) {
	cmd := exec.Command(zfsBin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, commandError(err, stderr.Bytes())
	}
	return out, nil
}

func (execCommander) Run(args ...string) error {
	cmd := exec.Command(zfsBin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return commandError(err, stderr.Bytes())
	}
	return nil
}

// commandError prefers the tool's stderr text over the bare exit status.
func commandError(err error, stderr []byte) error {
	if msg := strings.TrimSpace(string(stderr)); msg != "" {
		return errors.New(msg)
	}
	return err
}

// Source lists and destroys snapshots through the zfs command-line tool.
type Source struct {
	cmd Commander
}

// NewSource returns a Source backed by the real zfs binary.
func NewSource() *Source {
	return &Source{cmd: execCommander{}}
}

// NewSourceWithCommander returns a Source using a caller-supplied
// Commander. Intended for tests.
func NewSourceWithCommander(cmd Commander) *Source {
	return &Source{cmd: cmd}
}

// List returns the snapshots of dataset's immediate children (depth 1),
// sorted by creation time ascending as zfs emits them. The dataset is
// validated before any subprocess is spawned.
func (s *Source) List(dataset string) ([]types.Snapshot, error) {
	if !ValidDataset(dataset) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDataset, dataset)
	}

	out, err := s.cmd.Output("list", "-p", "-H", "-t", "snapshot",
		"-o", "name,creation", "-s", "creation", "-d", "1", dataset)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidDataset, dataset, err)
	}

	var snaps []types.Snapshot
	for _, line := range strings.Split(string(out), "\n") {
		if line == "" {
			continue
		}
		m := listLinePattern.FindStringSubmatch(line)
		if m == nil {
			// A line we cannot parse means the output format shifted under
			// us; that is a hard error, never a silent skip.
			return nil, fmt.Errorf("unexpected zfs list output: %q", line)
		}
		creation, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("unexpected creation timestamp in %q: %v", line, err)
		}
		snaps = append(snaps, types.Snapshot{
			Name:     m[1],
			Creation: time.Unix(creation, 0),
			Auto:     strings.HasPrefix(m[1], types.AutoSnapPrefix),
		})
	}
	return snaps, nil
}

// Destroy deletes a single snapshot. The error carries the zfs tool's own
// message on failure.
func (s *Source) Destroy(dataset, name string) error {
	return s.cmd.Run("destroy", dataset+"@"+name)
}

// Datasets returns the names of all filesystems and volumes. Used for
// shell completion; failures are not fatal to the caller.
func (s *Source) Datasets() ([]string, error) {
	out, err := s.cmd.Output("list", "-H", "-o", "name", "-t", "filesystem,volume")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
