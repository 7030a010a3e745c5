package grammar

/*
CommandKind tags the variant of a Command.
*/
type CommandKind int

/*
Command variants: a jump target, a jump, a conditional rule block keyed
on a variable comparison, an unconditional soft error, or a hard-error
commitment.
*/
const (
	CmdLabel CommandKind = iota
	CmdGoto
	CmdCompare
	CmdError
	CmdHardError
)

/*
Comparison is one of the relations a Command{Compare} can test for.
Number comparisons against equal operands satisfy Equal, GreaterOrEqual
and LessOrEqual simultaneously.
*/
type Comparison int

/*
Comparison values.
*/
const (
	CmpEqual Comparison = iota
	CmpNotEqual
	CmpGreater
	CmpGreaterOrEqual
	CmpLess
	CmpLessOrEqual
)

/*
Command is a standalone rule-list entry: exactly one of the variants
tagged by Kind.
*/
type Command struct {
	Kind CommandKind

	Name string // CmdLabel/CmdGoto

	Left  string     // CmdCompare
	Right string     // CmdCompare
	Op    Comparison // CmdCompare
	Rules []Rule     // CmdCompare: run when Op is satisfied

	Message string // CmdError

	Set bool // CmdHardError
}

/*
Label declares a jump target with the given name, reachable by a Goto
anywhere at or below this rule-list's scope.
*/
func Label(name string) Command { return Command{Kind: CmdLabel, Name: name} }

/*
GotoCommand transfers control to the Label with the given name, the
Command form of Goto (see also the Goto Parameter).
*/
func GotoCommand(name string) Command { return Command{Kind: CmdGoto, Name: name} }

/*
Compare runs rules when the comparison between two node-local variables
is satisfied.
*/
func Compare(left string, op Comparison, right string, rules ...Rule) Command {
	return Command{Kind: CmdCompare, Left: left, Right: right, Op: op, Rules: rules}
}

/*
RaiseError produces a soft, backtrackable ParseError with the given
message.
*/
func RaiseError(message string) Command { return Command{Kind: CmdError, Message: message} }

/*
SetHardError sets or clears the current node's hard-error commitment
flag, the Command form of HardError (see also the HardError Parameter).
*/
func SetHardError(set bool) Command { return Command{Kind: CmdHardError, Set: set} }
