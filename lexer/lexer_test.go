package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbln-org/gbln/lexer"
	"github.com/gbln-org/gbln/reporter"
	"github.com/gbln-org/gbln/token"
)

func allTokens(t *testing.T, src string) []token.Token {
	t.Helper()
	l := lexer.New([]byte(src))
	var toks []token.Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestStructuralTokens(t *testing.T) {
	toks := allTokens(t, "{}[]()<>")
	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []token.Kind{
		token.LBrace, token.RBrace,
		token.LBracket, token.RBracket,
		token.LParen, token.RParen,
		token.Lt, token.Gt,
		token.EOF,
	}, kinds)
}

func TestIdentLexeme(t *testing.T) {
	toks := allTokens(t, "rust-lang.io_v1+2")
	require.Len(t, toks, 2)
	assert.Equal(t, token.Ident, toks[0].Kind)
	assert.Equal(t, "rust-lang.io_v1+2", toks[0].Lexeme)
}

func TestWhitespaceIsSeparatorOnly(t *testing.T) {
	toks := allTokens(t, "  id \t<u32>\n(1)  ")
	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.Ident, token.Lt, token.Ident, token.Gt, token.LParen, token.Ident, token.RParen, token.EOF,
	}, kinds)
}

func TestPayloadReadsRawBytesUpToCloseParen(t *testing.T) {
	l := lexer.New([]byte("(hello world)"))
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, token.LParen, tok.Kind)

	payload, err := l.Payload()
	require.NoError(t, err)
	assert.Equal(t, "hello world", payload)

	tok, err = l.Next()
	require.NoError(t, err)
	assert.Equal(t, token.EOF, tok.Kind)
}

func TestPayloadEmpty(t *testing.T) {
	l := lexer.New([]byte("()"))
	_, err := l.Next()
	require.NoError(t, err)
	payload, err := l.Payload()
	require.NoError(t, err)
	assert.Equal(t, "", payload)
}

func TestUnterminatedString(t *testing.T) {
	l := lexer.New([]byte("(abc"))
	_, err := l.Next()
	require.NoError(t, err)
	_, err = l.Payload()
	require.Error(t, err)

	var diag *reporter.Diagnostic
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, reporter.UnterminatedString, diag.Kind)
}

func TestUnexpectedChar(t *testing.T) {
	l := lexer.New([]byte("id#bad"))
	_, err := l.Next()
	require.NoError(t, err)

	_, err = l.Next()
	require.Error(t, err)
	var diag *reporter.Diagnostic
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, reporter.UnexpectedChar, diag.Kind)
}

func TestNegativeNumberIsOneIdent(t *testing.T) {
	toks := allTokens(t, "-15")
	require.Len(t, toks, 2)
	assert.Equal(t, "-15", toks[0].Lexeme)
}
