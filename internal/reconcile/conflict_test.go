package reconcile

import (
	"testing"

	"kubedeploy/internal/cluster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conflictSnap() cluster.Snapshot {
	return cluster.Snapshot{
		Namespace: "database",
		Resources: []cluster.Resource{{Name: "pod/foo-bar"}},
	}
}

func TestResolveRecognizedAnswers(t *testing.T) {
	cases := map[string]ConflictDecision{
		"continue":    DecisionContinue,
		"recreate":    DecisionRecreate,
		"abort":       DecisionAbort,
		"  CONTINUE ": DecisionContinue,
		"Recreate\t":  DecisionRecreate,
	}
	for answer, want := range cases {
		prompter := &scriptedPrompter{answers: []string{answer}}
		decision, err := NewResolver(prompter).Resolve(conflictSnap())
		require.NoError(t, err, "answer %q", answer)
		assert.Equal(t, want, decision, "answer %q", answer)
	}
}

func TestResolveRepromptsOnUnrecognizedInput(t *testing.T) {
	prompter := &scriptedPrompter{answers: []string{"yes", "delete", "recreate"}}
	decision, err := NewResolver(prompter).Resolve(conflictSnap())
	require.NoError(t, err)
	assert.Equal(t, DecisionRecreate, decision)
	assert.Len(t, prompter.questions, 3)
	assert.Contains(t, prompter.questions[0], "pod/foo-bar", "the prompt must show the operator what is in the namespace")
}

func TestResolveGivesUpAfterBoundedAttempts(t *testing.T) {
	prompter := &scriptedPrompter{answers: []string{"nope", "nah", "what"}}
	_, err := NewResolver(prompter).Resolve(conflictSnap())
	require.Error(t, err)

	var invalid *InvalidUserInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, maxPromptAttempts, invalid.Attempts)
	assert.Equal(t, "what", invalid.Last)
}

func TestResolvePromptFailureIsAbort(t *testing.T) {
	// An exhausted script models a closed stdin.
	prompter := &scriptedPrompter{}
	decision, err := NewResolver(prompter).Resolve(conflictSnap())
	require.NoError(t, err)
	assert.Equal(t, DecisionAbort, decision)
}
