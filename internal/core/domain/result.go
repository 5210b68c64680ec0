package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Outcome is the three-state answer of a resolver.
type Outcome int

const (
	// OutcomeNoOpinion means the resolver does not handle the reference.
	OutcomeNoOpinion Outcome = iota
	// OutcomeSuccess means the reference was resolved to a path.
	OutcomeSuccess
	// OutcomeFailure means the reference cannot be resolved; the chain stops.
	OutcomeFailure
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNoOpinion:
		return "no-opinion"
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is an immutable resolution outcome.
// Results are only built through a ResultFactory or by the resolver service itself.
type Result struct {
	outcome      Outcome
	reference    SdkReference
	resolverName string
	path         string
	version      string
	warnings     []string
	messages     []string
}

// Outcome returns which of the three states the result is in.
func (r *Result) Outcome() Outcome { return r.outcome }

// Success reports whether the result resolved the reference.
func (r *Result) Success() bool { return r.outcome == OutcomeSuccess }

// Reference returns the reference the result answers.
func (r *Result) Reference() SdkReference { return r.reference }

// ResolverName returns the name of the resolver that produced the result.
// It is empty for failures synthesized when the chain is exhausted.
func (r *Result) ResolverName() string { return r.resolverName }

// Path returns the resolved SDK directory. Empty unless Success.
func (r *Result) Path() string { return r.path }

// Version returns the resolved SDK version, if the resolver reported one.
func (r *Result) Version() string { return r.version }

// Warnings returns a copy of the warnings attached to the result.
func (r *Result) Warnings() []string { return slices.Clone(r.warnings) }

// Messages returns a copy of the diagnostic messages of a failure.
func (r *Result) Messages() []string { return slices.Clone(r.messages) }

// String returns a one-line description of the result.
func (r *Result) String() string {
	switch r.outcome {
	case OutcomeSuccess:
		if r.version != "" {
			return fmt.Sprintf("%s -> %s (%s)", r.reference, r.path, r.version)
		}
		return fmt.Sprintf("%s -> %s", r.reference, r.path)
	case OutcomeFailure:
		return fmt.Sprintf("%s: %s", r.reference, strings.Join(r.messages, "; "))
	default:
		return fmt.Sprintf("%s: %s", r.reference, r.outcome)
	}
}

// NewUnresolvedResult builds the terminal failure used when no resolver in the chain
// produced a concrete outcome for ref.
func NewUnresolvedResult(ref SdkReference, consulted []string) *Result {
	msg := fmt.Sprintf("no resolver produced a result for sdk reference %q", ref.String())
	if len(consulted) > 0 {
		msg += fmt.Sprintf(" (consulted: %s)", strings.Join(consulted, ", "))
	}
	return &Result{
		outcome:   OutcomeFailure,
		reference: ref,
		messages:  []string{msg},
	}
}

// ResultFactory builds results on behalf of one resolver for one reference.
// The resolver service hands a fresh factory to every resolver invocation so that each
// result is stamped with the reference and the producing resolver.
type ResultFactory struct {
	reference    SdkReference
	resolverName string
}

// NewResultFactory creates a factory for results of resolverName answering ref.
func NewResultFactory(ref SdkReference, resolverName string) *ResultFactory {
	return &ResultFactory{reference: ref, resolverName: resolverName}
}

// IndicateSuccess builds a successful result for path with an optional version.
func (f *ResultFactory) IndicateSuccess(path, version string, warnings ...string) *Result {
	return &Result{
		outcome:      OutcomeSuccess,
		reference:    f.reference,
		resolverName: f.resolverName,
		path:         path,
		version:      version,
		warnings:     slices.Clone(warnings),
	}
}

// IndicateFailure builds a failure carrying the given diagnostic messages.
// A failure always carries at least one message.
func (f *ResultFactory) IndicateFailure(messages ...string) *Result {
	msgs := slices.DeleteFunc(slices.Clone(messages), func(m string) bool {
		return strings.TrimSpace(m) == ""
	})
	if len(msgs) == 0 {
		msgs = []string{fmt.Sprintf("sdk resolver %q failed to resolve %q", f.resolverName, f.reference.String())}
	}
	return &Result{
		outcome:      OutcomeFailure,
		reference:    f.reference,
		resolverName: f.resolverName,
		messages:     msgs,
	}
}

// NoOpinion builds the signal that the resolver does not handle the reference.
func (f *ResultFactory) NoOpinion() *Result {
	return &Result{
		outcome:      OutcomeNoOpinion,
		reference:    f.reference,
		resolverName: f.resolverName,
	}
}
