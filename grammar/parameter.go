package grammar

/*
ParameterKind tags the variant of a Parameter.
*/
type ParameterKind int

/*
Parameter variants, executed in order against the most recently matched
value once a rule's match-token succeeds.
*/
const (
	ParamSet        ParameterKind = iota // capture into a local NodeSlot/NodeList
	ParamGlobal                          // capture into a global NodeSlot/NodeList
	ParamCount                           // increment a local Number
	ParamCountGlobal                     // increment a global Number
	ParamTrue                            // set a local Boolean to true
	ParamFalse                           // set a local Boolean to false
	ParamTrueGlobal                      // set a global Boolean to true
	ParamFalseGlobal                     // set a global Boolean to false
	ParamHardError                       // set/clear the current node's hard-error flag
	ParamPrint                           // write a message to the trace logger
	ParamDebug                           // write a trace entry, optionally naming a variable
	ParamBack                            // rewind the cursor by N tokens
	ParamReturn                          // end the current node's rule walk successfully, immediately
	ParamGoto                            // jump to a label, unwinding enclosing Loops until matched
)

/*
Parameter is a single post-match action: exactly one of the variants
tagged by Kind, carrying only the payload field(s) relevant to that kind.
*/
type Parameter struct {
	Kind ParameterKind

	Name string // ParamSet/Global/Count*/True*/False*

	Bool bool // ParamHardError

	Message string // ParamPrint

	DebugVar    string // ParamDebug
	HasDebugVar bool

	N int // ParamBack

	Label string // ParamGoto
}

/*
Set captures the matched value into a node-local NodeSlot or NodeList.
*/
func Set(name string) Parameter { return Parameter{Kind: ParamSet, Name: name} }

/*
Global captures the matched value into a declared global NodeSlot or
NodeList.
*/
func Global(name string) Parameter { return Parameter{Kind: ParamGlobal, Name: name} }

/*
Count increments a node-local Number variable.
*/
func Count(name string) Parameter { return Parameter{Kind: ParamCount, Name: name} }

/*
CountGlobal increments a declared global Number variable.
*/
func CountGlobal(name string) Parameter { return Parameter{Kind: ParamCountGlobal, Name: name} }

/*
True sets a node-local Boolean variable to true.
*/
func True(name string) Parameter { return Parameter{Kind: ParamTrue, Name: name} }

/*
False sets a node-local Boolean variable to false.
*/
func False(name string) Parameter { return Parameter{Kind: ParamFalse, Name: name} }

/*
TrueGlobal sets a declared global Boolean variable to true.
*/
func TrueGlobal(name string) Parameter { return Parameter{Kind: ParamTrueGlobal, Name: name} }

/*
FalseGlobal sets a declared global Boolean variable to false.
*/
func FalseGlobal(name string) Parameter { return Parameter{Kind: ParamFalseGlobal, Name: name} }

/*
HardError sets or clears the current node's hard-error commitment flag.
*/
func HardError(set bool) Parameter { return Parameter{Kind: ParamHardError, Bool: set} }

/*
Print writes message to the trace logger.
*/
func Print(message string) Parameter { return Parameter{Kind: ParamPrint, Message: message} }

/*
Debug writes a trace entry describing the current match.
*/
func Debug() Parameter { return Parameter{Kind: ParamDebug} }

/*
DebugVar writes a trace entry describing the named node-local variable.
*/
func DebugVar(name string) Parameter {
	return Parameter{Kind: ParamDebug, DebugVar: name, HasDebugVar: true}
}

/*
Back rewinds the cursor by n tokens.
*/
func Back(n int) Parameter { return Parameter{Kind: ParamBack, N: n} }

/*
Return ends the current node's rule walk immediately, as a success.
*/
func Return() Parameter { return Parameter{Kind: ParamReturn} }

/*
Goto transfers control to the Command{Label{label}} at the nearest
enclosing scope that defines it, unwinding any intervening Loop.
*/
func Goto(label string) Parameter { return Parameter{Kind: ParamGoto, Label: label} }
