// Package token defines the lexical vocabulary shared by the lexer and the
// layout engine.
//
// A Stream is the ordered output of the lexer. Layout code walks it with a
// Cursor, which supports single steps and peeking past whitespace in both
// directions:
//
//	cur := stream.Cursor()
//	for cur.Next() {
//		tok := cur.Current()
//		if next, ok := cur.NextNonWhitespace(); ok && next.Type == token.ReservedTopLevel {
//			// ...
//		}
//	}
package token
