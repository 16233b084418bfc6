package ports

// InputResolver defines the interface for resolving file patterns.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type InputResolver interface {
	// ResolveInputs resolves the given patterns, relative to root, to a sorted
	// list of existing file paths.
	ResolveInputs(patterns []string, root string) ([]string, error)
}
