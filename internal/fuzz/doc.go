// Package fuzztests houses Go fuzz harnesses over the front half of the
// pipeline (source -> lexer -> parser) and the full check-and-emit path.
// Их цель: ни один вход не должен вызывать панику или зависание; ошибки
// компиляции допустимы.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
