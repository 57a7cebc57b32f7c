// Package action defines the result value every orchestrator returns, so
// callers decide how to act instead of relying on non-local control transfer.
package action

type Kind int

const (
	// KindRedirect hands control to another route after a successful mutation.
	KindRedirect Kind = iota + 1
	// KindFormError re-renders the form with field errors and/or a message.
	KindFormError
	// KindDone finishes in place (deletes re-render the current page).
	KindDone
)

type Result struct {
	Kind    Kind
	Target  string
	Errors  map[string][]string
	Message string
}

func Redirect(target string) Result {
	return Result{Kind: KindRedirect, Target: target}
}

func FormError(errs map[string][]string, message string) Result {
	return Result{Kind: KindFormError, Errors: errs, Message: message}
}

// Failure is a form error carrying only an overall message, used for
// database faults and missing records.
func Failure(message string) Result {
	return Result{Kind: KindFormError, Message: message}
}

func Done() Result {
	return Result{Kind: KindDone}
}
