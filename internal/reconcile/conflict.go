package reconcile

import (
	"fmt"
	"strings"

	"kubedeploy/internal/cluster"
	"kubedeploy/pkg/logging"
)

// Prompter is the operator-interaction capability. The CLI wires a
// readline-backed implementation; tests supply scripted answers.
type Prompter interface {
	// Ask poses a question and returns the operator's raw answer. The
	// allowed vocabulary is passed so the implementation can display it.
	Ask(question string, allowed []string) (string, error)
}

// The recognized conflict vocabulary. Answers are matched after trimming
// and lowercasing.
var conflictAnswers = []string{
	string(DecisionContinue),
	string(DecisionRecreate),
	string(DecisionAbort),
}

// maxPromptAttempts bounds re-prompting on unrecognized input. After the
// last attempt the run fails with InvalidUserInputError rather than
// guessing a decision.
const maxPromptAttempts = 3

// Resolver obtains a conflict decision from the operator.
type Resolver struct {
	prompter Prompter
}

// NewResolver creates a resolver over the given prompter.
func NewResolver(prompter Prompter) *Resolver {
	return &Resolver{prompter: prompter}
}

// Resolve asks the operator what to do about foreign resources in the
// namespace. Unrecognized input re-prompts up to maxPromptAttempts times.
func (r *Resolver) Resolve(snap cluster.Snapshot) (ConflictDecision, error) {
	question := fmt.Sprintf(
		"Namespace %q holds resources not created by this deployment:\n  %s\nContinue, recreate, or abort?",
		snap.Namespace, strings.Join(snap.Names(), "\n  "))

	var last string
	for attempt := 1; attempt <= maxPromptAttempts; attempt++ {
		answer, err := r.prompter.Ask(question, conflictAnswers)
		if err != nil {
			// A closed prompt (EOF) is an abort, not a crash.
			logging.Warn("Conflict", "Prompt failed (%v); treating as abort", err)
			return DecisionAbort, nil
		}
		normalized := strings.ToLower(strings.TrimSpace(answer))
		switch normalized {
		case string(DecisionContinue):
			return DecisionContinue, nil
		case string(DecisionRecreate):
			return DecisionRecreate, nil
		case string(DecisionAbort):
			return DecisionAbort, nil
		}
		last = answer
		logging.Info("Conflict", "Unrecognized answer %q; expected one of %s", answer, strings.Join(conflictAnswers, ", "))
	}
	return "", &InvalidUserInputError{Attempts: maxPromptAttempts, Last: last}
}
