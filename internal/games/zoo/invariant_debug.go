//go:build zoodebug

package zoo

import "fmt"

func (b *Board) assertInvariant(p Pos, msg string) {
	panic(fmt.Sprintf("zoo: board invariant violated at %s: %s", p, msg))
}
