// Package lsonar implements Lua 5.3 string pattern matching over byte
// strings: find, match, gmatch and gsub, built on a lexer, parser and
// backtracking matcher in the syntax and engine subpackages.
package lsonar
