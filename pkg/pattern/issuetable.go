package pattern

// IssueTable lists individual diagnostics grouped by file.
type IssueTable struct {
	Label string
	Kind  string // coloring of the header
	Tier  string // LOW, MEDIUM or HIGH
	Files []IssueFile
}

// IssueFile is one file's block within an IssueTable.
type IssueFile struct {
	Path   string
	Note   string // e.g., "3 critical issues"
	Issues []IssueItem
}

// IssueItem is a single diagnostic.
type IssueItem struct {
	Line    int
	Column  int
	Rule    string
	Message string
}

// Count returns the number of issues across all files.
func (t *IssueTable) Count() int {
	n := 0
	for _, f := range t.Files {
		n += len(f.Issues)
	}
	return n
}

func (t *IssueTable) Type() PatternType { return PatternTypeIssueTable }
