package result

// Bucket keys used by Combine for failures that carry no field errors.
const (
	BucketError             = "Error"
	BucketSecurity          = "Security"
	BucketOperationCanceled = "OperationCanceled"
)

// Combine folds many outcomes into one.
//
// With no inputs it fails with "No results to combine". If every input
// succeeded the result is a plain success. Otherwise the combined outcome is
// always a FailureValidation: plain, security and cancellation failures are
// appended to the "Error", "Security" and "OperationCanceled" buckets, and
// validation failures are merged field by field with message lists
// concatenated in input order.
func Combine(results ...Result) Result {
	if len(results) == 0 {
		return Failure(noResultsMessage)
	}
	if failed, ok := mergeFailures(results); ok {
		return failed
	}
	return Success()
}

// CombineOf is Combine for typed outcomes. When every input succeeded it returns
// the first input's value and result type; later values are discarded.
func CombineOf[T any](results ...Of[T]) Of[T] {
	if len(results) == 0 {
		return FailureOf[T](noResultsMessage)
	}
	plain := make([]Result, len(results))
	for i, r := range results {
		plain[i] = r.outcome
	}
	if failed, ok := mergeFailures(plain); ok {
		return Of[T]{outcome: failed}
	}
	return results[0]
}

func mergeFailures(results []Result) (Result, bool) {
	var (
		merged map[string][]string
		order  []string
	)
	add := func(key string, msgs ...string) {
		if merged == nil {
			merged = make(map[string][]string)
		}
		if _, ok := merged[key]; !ok {
			order = append(order, key)
		}
		merged[key] = append(merged[key], msgs...)
	}

	for _, r := range results {
		switch r.failureType {
		case FailureNone:
			continue
		case FailureValidation:
			for _, field := range sortedFields(r.failures) {
				add(field, r.failures[field]...)
			}
		case FailureSecurity:
			add(BucketSecurity, r.message)
		case FailureOperationCanceled:
			add(BucketOperationCanceled, r.message)
		default:
			add(BucketError, r.message)
		}
	}

	if merged == nil {
		return Result{}, false
	}
	return ValidationFailure(merged, WithMessage(Summarize(merged, order))), true
}
