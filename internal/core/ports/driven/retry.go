package driven

import "context"

// RetryPolicy wraps an operation that may fail transiently. The policy
// decides how many attempts to make and how long to wait between them;
// it should only re-attempt errors that report domain.IsRetryable.
// Retry behaviour is a pipeline-level concern, injected so tests can
// supply a zero-retry policy.
type RetryPolicy interface {
	// Do runs attempt until it succeeds, returns a non-retryable
	// error, or attempts are exhausted. The last error is returned.
	Do(ctx context.Context, attempt func(ctx context.Context) error) error
}
