package main

// Character-class predicates used by the lexer's identifier/number
// recognition. Ported from original_source/src/lexical/chr.py.

func isAlpha(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isAlphaOrUnderscore(r rune) bool {
	return isAlpha(r) || r == '_'
}

func isDecimalDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isAlphaNumOrUnderscore(r rune) bool {
	return isAlpha(r) || isDecimalDigit(r) || r == '_'
}

// isIdentStart/isIdentCont classify identifier characters per the rule
// [A-Za-z_][A-Za-z0-9_]*.
func isIdentStart(r rune) bool { return isAlphaOrUnderscore(r) }
func isIdentCont(r rune) bool  { return isAlphaNumOrUnderscore(r) }
