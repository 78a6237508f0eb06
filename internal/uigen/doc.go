// Package uigen compiles .ui markup into a node tree.
//
// The pipeline consists of:
//   - [Lexer]: tokenizes .ui source into a token stream
//   - [Parser]: builds a [tree.Tree] from the token stream
//   - [Print]: renders a tree back to canonical .ui source
//
// Errors carry a position and an [ErrorKind]; match them with errors.Is against
// the exported sentinels such as [ErrUnknownComponent].
package uigen
