// Package token provides the lexical front end for kane scene files.
//
// [NewTokenizer] wraps an [io.Reader] and produces a lazy, single pass
// sequence of [Token] values or errors ([*ReadError], [*ParseError],
// [*CastError]) via [Tokenizer.Next] or [Tokenizer.All].
//
// [Tokenize] and [Collect] drain a reader in one call.
package token
