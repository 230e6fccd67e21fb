//go:build !zoodebug

package zoo

// assertInvariant reports a broken board invariant. Release builds log it
// and carry on; build with -tags zoodebug to panic instead.
func (b *Board) assertInvariant(p Pos, msg string) {
	b.logger.Warn("board invariant violated", "cell", p, "reason", msg)
	if b.hooks.Reject != nil {
		b.hooks.Reject(p, msg)
	}
}
