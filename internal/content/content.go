// Package content implements the idempotent "ensure file content" operation:
// given a path and the exact text it should hold, read the current state,
// compare, and perform the minimal write (none, overwrite, or create with
// parent directories) to converge. Check mode reports the same outcome
// without touching the file system.
package content

// Result messages. These literals are part of the task's output contract.
const (
	MsgSameContent = "File already exists and has the same content"
	MsgWouldChange = "File exists and would be changed"
	MsgWouldCreate = "File does not exist and would be created"
	MsgChanged     = "File was changed"
	MsgCreated     = "File was created"
)

// Request describes the desired state of a single file
type Request struct {
	Path    string
	Content string
	DryRun  bool
}

// Result reports the outcome of a single ensure
type Result struct {
	Changed bool   `json:"changed"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// State is the relationship between a file on disk and its desired content
type State int

const (
	// StateAbsent means no file exists at the path
	StateAbsent State = iota
	// StateDivergent means the file exists with different content
	StateDivergent
	// StateConverged means the file already holds the desired content
	StateConverged
)

func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateDivergent:
		return "divergent"
	case StateConverged:
		return "converged"
	default:
		return "unknown"
	}
}
