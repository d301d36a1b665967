// Package expr compiles and evaluates single-variable math expressions such as
// "sin(x)/x" or "Math.sqrt(x*x+1)".
//
// Input goes through a small lexer and a recursive-descent parser into an AST that is
// interpreted per call. Only arithmetic operators, a fixed set of constants and an
// allow-list of math functions are available; there is no way to reach arbitrary code.
package expr
