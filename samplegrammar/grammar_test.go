package samplegrammar

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/parsekit/rparse/parser"
)

type functionFixture struct {
	Source         string `yaml:"source"`
	Identifier     string `yaml:"identifier"`
	ParameterCount int    `yaml:"parameterCount"`
	HasReturnType  bool   `yaml:"hasReturnType"`
}

type importFixture struct {
	Source string `yaml:"source"`
	File   string `yaml:"file"`
	Alias  string `yaml:"alias"`
}

func loadFixture(t *testing.T, name string, out interface{}) {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(data, out))
}

// tokenText reads back the source text of a NodeSlot variable that
// captured a raw token (an identifier, keyword spelling, or literal),
// as opposed to a captured sub-node.
func tokenText(t *testing.T, text string, node *parser.ASTNode, name string) (string, bool) {
	t.Helper()
	v, ok := node.Variables[name].(*parser.NodeSlotVar)
	if !ok || v.Value == nil || v.Value.Kind != parser.CapturedToken {
		return "", false
	}
	tok := v.Value.Token
	return text[tok.Offset : tok.Offset+tok.Length], true
}

func TestFunctionDeclarationScenario(t *testing.T) {
	var fx functionFixture
	loadFixture(t, "function.yaml", &fx)

	lx := NewLexer()
	toks, err := lx.Lex(fx.Source)
	require.NoError(t, err)

	res, err := parser.Parse(NewGrammar(), toks, fx.Source, "entry")
	require.NoError(t, err)

	decls := res.Entry.Children("list")
	require.Len(t, decls, 1)

	fn := decls[0]
	assert.Equal(t, "KWFunction", fn.Name)

	ident, ok := tokenText(t, fx.Source, fn, "identifier")
	require.True(t, ok)
	assert.Equal(t, fx.Identifier, ident)

	assert.Len(t, fn.Children("parameters"), fx.ParameterCount)

	returnSlot := fn.Variables["return_type"].(*parser.NodeSlotVar)
	assert.Equal(t, fx.HasReturnType, returnSlot.Value != nil)

	body, ok := fn.Child("body")
	require.True(t, ok)
	assert.Empty(t, body.Children("nodes"))
}

func TestImportDeclarationScenario(t *testing.T) {
	var fx importFixture
	loadFixture(t, "import.yaml", &fx)

	lx := NewLexer()
	toks, err := lx.Lex(fx.Source)
	require.NoError(t, err)

	res, err := parser.Parse(NewGrammar(), toks, fx.Source, "entry")
	require.NoError(t, err)

	decls := res.Entry.Children("list")
	require.Len(t, decls, 1)

	imp := decls[0]
	assert.Equal(t, "KWImport", imp.Name)

	file, ok := tokenText(t, fx.Source, imp, "file")
	require.True(t, ok)
	// the captured file token is the merged Complex("string") span,
	// quotes included.
	assert.Contains(t, file, fx.File)

	alias, ok := tokenText(t, fx.Source, imp, "alias")
	require.True(t, ok)
	assert.Equal(t, fx.Alias, alias)
}

func TestNumberSuffixPreprocessing(t *testing.T) {
	lx := NewLexer()

	cases := map[string]string{
		"42":   "int",
		"42u":  "uint",
		"3.14": "float",
		"3f":   "float",
	}
	for src, wantTag := range cases {
		toks, err := lx.Lex(src)
		require.NoError(t, err, src)
		require.NotEmpty(t, toks)
		assert.Equal(t, wantTag, toks[0].TokenKind.Tag, src)
	}
}

func TestMalformedFloatPreprocessorError(t *testing.T) {
	lx := NewLexer()
	_, err := lx.Lex("3.x")
	require.Error(t, err)
}

func TestStringMergingPreprocessor(t *testing.T) {
	lx := NewLexer()
	text := `import "io"`
	toks, err := lx.Lex(text)
	require.NoError(t, err)

	var found bool
	for _, tok := range toks {
		if tok.TokenKind.Tag == "string" {
			found = true
			assert.Equal(t, `"io"`, text[tok.Offset:tok.Offset+tok.Length])
		}
	}
	assert.True(t, found)
}
