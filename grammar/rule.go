package grammar

/*
RuleKind tags the variant of a Rule.
*/
type RuleKind int

/*
Rule variants.
*/
const (
	RuleIs        RuleKind = iota // match token; on IsNot, fail; on Is, run params+rules
	RuleIsnt                      // match token; on Is, fail; on IsNot, run rules
	RuleIsOneOf                   // try alternatives in order; first Is wins
	RuleMaybe                     // match token; run IsRules or IsntRules, never fails
	RuleMaybeOneOf                // try alternatives in order; run IsntRules if none match
	RuleWhile                     // repeat while token matches; never fails
	RuleUntil                     // advance until token matches, leaving it unconsumed
	RuleLoop                      // repeat rules until a Goto or error exits
	RuleCommand                   // a standalone Command
)

/*
Alternative is one branch of an IsOneOf or MaybeOneOf rule.
*/
type Alternative struct {
	Token  MatchToken
	Params []Parameter
	Rules  []Rule
}

/*
Rule is a single entry in a node's (or Loop's, or Compare's) rule list:
exactly one of the variants tagged by Kind, carrying only the fields
relevant to that kind.
*/
type Rule struct {
	Kind RuleKind

	Token  MatchToken // RuleIs/RuleIsnt/RuleMaybe/RuleWhile/RuleUntil
	Params []Parameter
	Rules  []Rule // inner rules to run after a successful match, or IsRules for Maybe

	IsntRules []Rule // RuleMaybe/RuleMaybeOneOf: run when the token does not match

	Alternatives []Alternative // RuleIsOneOf/RuleMaybeOneOf

	LoopRules []Rule // RuleLoop

	Command Command // RuleCommand
}

/*
Is matches token; on success it runs params then rules; on failure it
fails the enclosing node (a hard Go error, rewound or propagated by the
caller depending on the node's hard-error flag).
*/
func Is(token MatchToken, params []Parameter, rules ...Rule) Rule {
	return Rule{Kind: RuleIs, Token: token, Params: params, Rules: rules}
}

/*
Isnt matches token; on success (the token IS present) it fails with
ExpectedToNotBe and rewinds to the enclosing node's entry; on failure (the
token is absent) it runs rules.
*/
func Isnt(token MatchToken, rules ...Rule) Rule {
	return Rule{Kind: RuleIsnt, Token: token, Rules: rules}
}

/*
IsOneOf tries each alternative's token in order; the first one that
matches has its params and rules run. If none match, the rule fails.
*/
func IsOneOf(alts ...Alternative) Rule {
	return Rule{Kind: RuleIsOneOf, Alternatives: alts}
}

/*
Maybe matches token; if it matches, params and isRules run; otherwise
isntRules run. Maybe never fails on account of the match itself.
*/
func Maybe(token MatchToken, params []Parameter, isRules []Rule, isntRules []Rule) Rule {
	return Rule{Kind: RuleMaybe, Token: token, Params: params, Rules: isRules, IsntRules: isntRules}
}

/*
MaybeOneOf tries each alternative in order; the first match runs its
params and rules. If none match, isntRules run. MaybeOneOf never fails.
*/
func MaybeOneOf(isntRules []Rule, alts ...Alternative) Rule {
	return Rule{Kind: RuleMaybeOneOf, Alternatives: alts, IsntRules: isntRules}
}

/*
While repeats: match token, run params, run rules, and loop, stopping as
soon as the token fails to match. While never fails, though its body may.
*/
func While(token MatchToken, params []Parameter, rules ...Rule) Rule {
	return Rule{Kind: RuleWhile, Token: token, Params: params, Rules: rules}
}

/*
Until advances the cursor one token at a time until token matches,
leaving the matching token unconsumed by Until itself; it then runs
params then rules. Reaching end-of-input first is an Eof failure.
*/
func Until(token MatchToken, params []Parameter, rules ...Rule) Rule {
	return Rule{Kind: RuleUntil, Token: token, Params: params, Rules: rules}
}

/*
Loop runs rules repeatedly until a Goto exits it (to a label declared
outside the loop body) or an error terminates the parse.
*/
func Loop(rules ...Rule) Rule {
	return Rule{Kind: RuleLoop, LoopRules: rules}
}

/*
CommandRule wraps a standalone Command as a rule-list entry.
*/
func CommandRule(c Command) Rule {
	return Rule{Kind: RuleCommand, Command: c}
}
