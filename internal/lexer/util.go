package lexer

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isEscape(b byte) bool {
	return b == 'n' || b == 't' || b == '\'' || b == '\\'
}

// CharValue decodes the value of a character literal lexeme.
func CharValue(lexeme string) rune {
	if len(lexeme) == 4 {
		switch lexeme[2] {
		case 'n':
			return '\n'
		case 't':
			return '\t'
		default:
			return rune(lexeme[2])
		}
	}
	if len(lexeme) == 3 {
		return rune(lexeme[1])
	}
	return 0
}
