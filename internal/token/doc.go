// Package token defines the tokens of the comment-tolerant JSON dialect used
// by config files: the JSON punctuators and literals, bare identifiers,
// single-quoted strings, and line/block comments carried as trivia.
package token
