package matcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conversive/chatmatch/internal/config"
	"github.com/conversive/chatmatch/internal/message"
	chatmatcherrors "github.com/conversive/chatmatch/pkg/errors"
)

func alwaysMatch(*message.Message, *config.Config) bool { return true }

func TestRegistryRegisterValidation(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	cases := []struct {
		name string
		rule Rule
	}{
		{name: "missing name", rule: Rule{Component: "X", Match: alwaysMatch}},
		{name: "missing component", rule: Rule{Name: "x", Match: alwaysMatch}},
		{name: "missing predicate", rule: Rule{Name: "x", Component: "X"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := r.Register(tc.rule)
			require.Error(t, err)
			var ruleErr *chatmatcherrors.RuleError
			require.ErrorAs(t, err, &ruleErr)
		})
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	rule := Rule{Name: "survey", Component: "Survey", Match: alwaysMatch}

	require.NoError(t, r.Register(rule))
	err := r.Register(rule)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already registered")
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.Register(Rule{Name: "first", Component: "A", Match: alwaysMatch}))
	require.NoError(t, r.Register(Rule{Name: "second", Component: "B", Match: alwaysMatch}))
	require.NoError(t, r.Register(Rule{Name: "third", Component: "C", Match: alwaysMatch}))

	require.NoError(t, r.Deregister("second"))

	rules := r.Rules()
	require.Len(t, rules, 2)
	require.Equal(t, "first", rules[0].Name)
	require.Equal(t, "third", rules[1].Name)
}

func TestRegistryDeregisterUnknown(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.Error(t, r.Deregister("ghost"))
}

func TestMatcherConsultsRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.Register(Rule{
		Name:      "survey",
		Component: "Survey",
		Match: func(msg *message.Message, _ *config.Config) bool {
			return msg.PluginType() == "survey"
		},
	}))

	m := New(r, nil)
	msg := &message.Message{Data: map[string]any{
		"_plugin": map[string]any{"type": "survey"},
	}}

	results := m.Match(msg, nil)
	require.Len(t, results, 1)
	require.Equal(t, "Survey", results[0].Component)
}
