package await

// Switch moves from Outcome[In] to Outcome[Out] via onSuccess.
// Failures and cancellations pass through untouched.
func Switch[In, Out any](input Outcome[In],
	onSuccess func(v In) Outcome[Out]) Outcome[Out] {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return From[In, Out](input)
}

// Map transforms the successful value with a pure function.
func Map[In, Out any](input Outcome[In],
	onSuccess func(v In) Out) Outcome[Out] {

	if input.IsSuccess() {
		return Success(onSuccess(input.Value()))
	}
	return From[In, Out](input)
}

// Try calls a function returning (Out, error) and converts the error,
// if any, into a failure.
func Try[In, Out any](input Outcome[In],
	onTryExecute func(v In) (Out, error)) Outcome[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(input.Value())
		if err != nil {
			if IsCancellation(err) {
				return Cancel[Out](err)
			}
			return Failure[Out](err)
		}
		return Success(out)
	}
	return From[In, Out](input)
}

// Tee runs a side effect on success without changing the outcome.
func Tee[T any](input Outcome[T], onSuccess func(v T)) Outcome[T] {
	if input.IsSuccess() {
		onSuccess(input.Value())
	}
	return input
}

// DoubleTee runs the matching side effect for each branch of the outcome
// without changing it.
func DoubleTee[T any](input Outcome[T],
	onSuccess func(v T),
	onError func(err error),
	onCancel func(err error)) Outcome[T] {

	if input.IsSuccess() {
		onSuccess(input.Value())
	} else if input.IsCancel() {
		onCancel(input.Err())
	} else {
		onError(input.Err())
	}

	return input
}

// Finally collapses an Outcome into a final value via branch handlers.
func Finally[In, Out any](input Outcome[In],
	onSuccess func(v In) Out,
	onError func(err error) Out,
	onCancel func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	} else if input.IsCancel() {
		return onCancel(input.Err())
	} else {
		return onError(input.Err())
	}
}
