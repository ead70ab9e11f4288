package world

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"go.uber.org/multierr"
)

// optionRule is a CEL expression over the option values that holds for every
// acceptable configuration.
type optionRule struct {
	options []string
	expr    string
	reason  string
}

type optionRange struct {
	name     string
	min, max int64
}

var optionRanges = []optionRange{
	{"starting_area", 0, int64(StartRandom)},
	{"goal", 0, int64(GoalFourFinalTasks)},
	{"include_model_church_pecks", 0, int64(PecksAll)},
	{"mega_honk_amount", 0, 3},
	{"speedy_feet_amount", 0, 10},
	{"goose_day_amount", 0, 3},
	{"coin_weight", 0, 100},
	{"tired_goose_weight", 0, 100},
	{"confused_feet_weight", 0, 100},
	{"butterbeak_weight", 0, 100},
	{"suspicious_goose_weight", 0, 100},
}

var optionConflicts = []optionRule{
	{
		options: []string{"goal", "include_extra_tasks"},
		expr:    "!(goal == 4 || goal == 5) || include_extra_tasks",
		reason:  "the selected goal needs the To Do (As Well) tasks",
	},
	{
		options: []string{"goal", "include_speedrun_tasks"},
		expr:    "!(goal == 3 || goal == 5) || include_speedrun_tasks",
		reason:  "the selected goal needs the To Do (Quickly!!) tasks",
	},
	{
		options: []string{"include_prop_souls", "include_item_pickups"},
		expr:    "!include_prop_souls || include_item_pickups",
		reason:  "prop souls are only placed when item pickups are on",
	},
	{
		options: []string{"logically_require_npc_souls", "include_npc_souls"},
		expr:    "!logically_require_npc_souls || include_npc_souls",
		reason:  "npc souls cannot be required when they are not shuffled",
	},
}

func optionRules() []optionRule {
	out := make([]optionRule, 0, len(optionRanges)+len(optionConflicts))
	for _, r := range optionRanges {
		out = append(out, optionRule{
			options: []string{r.name},
			expr:    fmt.Sprintf("%s >= %d && %s <= %d", r.name, r.min, r.name, r.max),
			reason:  fmt.Sprintf("must be within %d..%d", r.min, r.max),
		})
	}
	return append(out, optionConflicts...)
}

type compiledRule struct {
	optionRule
	program cel.Program
}

var compiledOptionRules = sync.OnceValues(func() ([]compiledRule, error) {
	var decls []cel.EnvOption
	for name, v := range DefaultOptions().values() {
		switch v.(type) {
		case bool:
			decls = append(decls, cel.Variable(name, cel.BoolType))
		case int64:
			decls = append(decls, cel.Variable(name, cel.IntType))
		default:
			return nil, fmt.Errorf("option %s has unsupported type %T", name, v)
		}
	}
	env, err := cel.NewEnv(decls...)
	if err != nil {
		return nil, fmt.Errorf("option rules env: %w", err)
	}

	rules := optionRules()
	out := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		ast, iss := env.Compile(r.expr)
		if iss.Err() != nil {
			return nil, fmt.Errorf("compile option rule %q: %w", r.expr, iss.Err())
		}
		if !ast.OutputType().IsExactType(cel.BoolType) {
			return nil, fmt.Errorf("option rule %q is not boolean", r.expr)
		}
		prg, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("program option rule %q: %w", r.expr, err)
		}
		out = append(out, compiledRule{optionRule: r, program: prg})
	}
	return out, nil
})

// Validate checks every option against its range and against the other
// options. All violations are reported together as OptionConflictErrors.
func (o Options) Validate() error {
	rules, err := compiledOptionRules()
	if err != nil {
		return err
	}
	vars := o.values()
	var errs error
	for _, r := range rules {
		out, _, err := r.program.Eval(vars)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("evaluate option rule %q: %w", r.expr, err))
			continue
		}
		if ok, _ := out.Value().(bool); !ok {
			errs = multierr.Append(errs, &OptionConflictError{Options: r.options, Reason: r.reason})
		}
	}
	return errs
}
