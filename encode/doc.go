// Package encode renders token sequences as text, JSON lines or YAML.
//
// Each [token.Result] becomes a [Record]; [Encoder] writes records one
// at a time so a token stream can be rendered while it is lexed.
package encode
