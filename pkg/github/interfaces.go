package github

// APIClient defines the interface for the GitHub API operations a labeling
// run performs
type APIClient interface {
	// Issue operations
	GetIssue(owner, repo string, number int) (*Issue, error)
	ListLabels(owner, repo string, number int) ([]string, error)
	AddLabels(owner, repo string, number int, labels []string) error
	RemoveLabel(owner, repo string, number int, label string) error

	// Repository content operations
	GetFileContent(owner, repo, path string) ([]byte, error)
}
