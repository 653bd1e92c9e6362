// printer.go: display rendering for values.
package slip

import (
	"strconv"
	"strings"
)

// String renders the canonical display form:
//
//	(a b c)        Nil-terminated pair chain
//	(1 . (2 . 3))  chain with a non-Nil tail, dotted at every level
//	nil true       keywords; Nil also covers the empty list
//	abc            strings print raw, without quotes
//	'e             quoted form
//	<function>     native procedure
//	(lambda (x y) body)
//
// Foreign values render through their own display capability.
func (v Value) String() string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v Value) {
	switch v.Kind {
	case KindNil:
		b.WriteString("nil")
	case KindTrue:
		b.WriteString("true")
	case KindInteger:
		b.WriteString(strconv.FormatInt(v.Data.(int64), 10))
	case KindFloat:
		b.WriteString(strconv.FormatFloat(v.Data.(float64), 'g', -1, 64))
	case KindString, KindSymbol:
		b.WriteString(v.Data.(string))
	case KindQuote:
		b.WriteByte('\'')
		writeValue(b, v.Inner())
	case KindNative:
		b.WriteString("<function>")
	case KindClosure:
		c := v.Data.(*Closure)
		b.WriteString("(lambda (")
		b.WriteString(strings.Join(c.Params, " "))
		b.WriteString(") ")
		writeValue(b, c.Body)
		b.WriteByte(')')
	case KindPair:
		if elems, err := ListSlice(v); err == nil {
			b.WriteByte('(')
			for i, e := range elems {
				if i > 0 {
					b.WriteByte(' ')
				}
				writeValue(b, e)
			}
			b.WriteByte(')')
		} else {
			p := v.Pair()
			b.WriteByte('(')
			writeValue(b, p.Car)
			b.WriteString(" . ")
			writeValue(b, p.Cdr)
			b.WriteByte(')')
		}
	case KindForeign:
		b.WriteString(v.Data.(foreignData).display())
	}
}
