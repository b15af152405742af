package cursor

import (
	"github.com/dshills/jim/internal/dispatcher/execctx"
	"github.com/dshills/jim/internal/engine/buffer"
)

func findForward(ctx *execctx.Context) error {
	return jumpTo(ctx, 1)
}

func tillForward(ctx *execctx.Context) error {
	return jumpTo(ctx, 0)
}

// jumpTo moves to the next occurrence of the argument character on the
// current line, plus past columns. Movement saturates at the last
// character of the line.
func jumpTo(ctx *execctx.Context, past int) error {
	target, ok := ctx.ArgRune()
	if !ok {
		return nil
	}

	buf, cur := ctx.Buffer(), ctx.Cursor()
	col, found := nextOccurrence(buf, cur.Line(), cur.Column(), target)
	if !found {
		return nil
	}
	cur.MoveRight(buf, col-cur.Column()+past)
	return nil
}

// nextOccurrence returns the column of the first target after column
// from on the given line.
func nextOccurrence(buf *buffer.Buffer, line, from int, target rune) (int, bool) {
	text, ok := buf.Line(line)
	if !ok {
		return 0, false
	}
	for col, r := range []rune(text) {
		if col > from && r == target {
			return col, true
		}
	}
	return 0, false
}
