package lexer

// skipTrivia пропускает пробелы и комментарии '#' до конца строки.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch ch := lx.cursor.Peek(); {
		case isBlank(ch):
			lx.cursor.Advance(1)
		case ch == '#':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Advance(1)
			}
		default:
			return
		}
	}
}
