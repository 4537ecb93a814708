package domain

// RetryPolicy bounds how many times a failed external operation is
// reattempted. It is an explicit value so tests can inject deterministic
// failure sequences instead of relying on a hidden loop.
type RetryPolicy struct {
	// Retries is the number of reattempts after the first failure.
	Retries int
}

// DefaultInstallRetry retries a failed install exactly once. A second
// failure is fatal; further retries would only mask persistent network or
// package failures as transient.
var DefaultInstallRetry = RetryPolicy{Retries: 1}

// Attempts returns the total number of attempts the policy allows.
func (p RetryPolicy) Attempts() int {
	if p.Retries < 0 {
		return 1
	}
	return p.Retries + 1
}
