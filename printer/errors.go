package printer

import "errors"

// Errors used as panic values for caller programming errors. Neither
// condition is recoverable: once the indentation stack loses its invariant
// the session's output can no longer be trusted.
var (
	// ErrUnbalancedIndent indicates an Unindent call with no matching
	// indent push. The stack starts with a sentinel entry, so this is only
	// reachable on the second consecutive unmatched pop.
	ErrUnbalancedIndent = errors.New("indent/unindent calls are not balanced")

	// ErrIndentShrink indicates an IndentTo target column smaller than the
	// current indentation. Indentation may only grow or hold steady.
	ErrIndentShrink = errors.New("indent target is less than the current indent")
)
