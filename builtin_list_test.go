// builtin_list_test.go
package slip

import "testing"

func Test_Builtin_Cons_Car_Cdr(t *testing.T) {
	wantDisplayed(t, "(cons 1 2)", "(1 . 2)")
	wantDisplayed(t, "(cons 1 '(2 3))", "(1 2 3)")
	wantInt(t, evalSrc(t, "(car '(1 2 3))"), 1)
	wantDisplayed(t, "(cdr '(1 2 3))", "(2 3)")
	wantInt(t, evalSrc(t, "(cdr (cons 1 2))"), 2)
	wantNil(t, evalSrc(t, "(cdr '(1))"))
	// arguments are evaluated
	wantDisplayed(t, "(cons (+ 1 1) (+ 2 2))", "(2 . 4)")
}

func Test_Builtin_Car_Cdr_Require_A_Cell(t *testing.T) {
	wantErrMsg(t, "(car nil)", "Type error: Expression must be a Cell")
	wantErrMsg(t, "(cdr 5)", "Type error: Expression must be a Cell")
}

func Test_Builtin_List(t *testing.T) {
	wantDisplayed(t, "(list 1 (+ 1 1) 3)", "(1 2 3)")
	wantNil(t, evalSrc(t, "(list)"))
	wantDisplayed(t, "(list '(1) nil true)", "((1) nil true)")
}

func Test_Builtin_Append(t *testing.T) {
	wantDisplayed(t, "(append '(1 2) '(3) '(4 5))", "(1 2 3 4 5)")
	wantDisplayed(t, "(append '(1 2) nil '(3))", "(1 2 3)")
	wantNil(t, evalSrc(t, "(append)"))
	wantNil(t, evalSrc(t, "(append nil nil)"))
	wantErrMsg(t, "(append 5)", "Type error: Expected a cell or nil")
}

func Test_Builtin_Map(t *testing.T) {
	wantDisplayed(t, "(map (lambda (x) (* x x)) '(1 2 3))", "(1 4 9)")
	wantNil(t, evalSrc(t, "(map (lambda (x) x) nil)"))
	wantDisplayed(t, "(set 'inc (lambda (n) (+ n 1))) (map inc '(1 2))", "(2 3)")
	wantErrMsg(t, "(map (lambda (x) x) 5)", "Type error: Expected a cell or nil")
}

func Test_Builtin_Map_Resolves_Symbol_Elements(t *testing.T) {
	// list elements land unquoted in the generated (f elem) call, so an
	// element that is itself a symbol resolves through the environment
	wantDisplayed(t, "(set 'y 10) (map (lambda (e) e) '(y))", "(10)")
}
