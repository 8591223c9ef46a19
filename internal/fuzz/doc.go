// Package fuzztests houses Go fuzz harnesses for the config pipeline
// (source -> lexer -> parser -> options). Its goal is to guard against panics,
// hangs and disagreements between the two conversion entries on arbitrary
// input.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
