package consoletest

import (
	"testing"

	"github.com/mylesmegyesi/clojure.core/pkg/runtime"
)

func TestDef(t *testing.T) {
	tests := TestSuite{
		{"define and resolve", TestSequence{
			{"ns user", "#namespace[user]"},
			{"def x 42", "#'user/x"},
			{"x", "42"},
			{"user/x", "42"},
			{"nope", "could not resolve var: nope"},
		}},
		{"redefine", TestSequence{
			{"(def x 1)", "#'user/x"},
			{"(def x 2)", "#'user/x"},
			{"x", "2"},
			{"def x", "#'user/x"},
			{"x", "#unbound[#'user/x]"},
			{"x 1", "attempting to call unbound fn: #'user/x"},
		}},
		{"unbound", TestSequence{
			{"def f", "#'user/f"},
			{"f", "#unbound[#'user/f]"},
			{"f 1", "attempting to call unbound fn: #'user/f"},
		}},
		{"qualified", TestSequence{
			{"def a/x 1", "can't intern namespace-qualified symbol: a/x"},
			{"x", "could not resolve var: x"},
		}},
		{"arguments", TestSequence{
			{"def", "#fn[def]"},
			{"def x 1 2", "wrong number of args (3) passed to: def"},
			{`def "x" 1`, `def: argument 1 is not a symbol: "x"`},
		}},
	}
	RunTestSuite(t, tests)
}

func TestNamespaces(t *testing.T) {
	tests := TestSuite{
		{"qualified resolution", TestSequence{
			{"ns a", "#namespace[a]"},
			{`clojure.core/def y "hi"`, "#'a/y"},
			{"clojure.core/ns b", "#namespace[b]"},
			{"a/y", `"hi"`},
			{"y", "could not resolve var: y"},
		}},
		{"new namespaces are empty", TestSequence{
			{"ns scratch", "#namespace[scratch]"},
			{"def x 1", "could not resolve var: def"},
			{"clojure.core/def x 1", "#'scratch/x"},
		}},
		{"opaque namespace names", TestSequence{
			{"ns a/b", "can't intern namespace-qualified symbol: a/b"},
			{"a/b/c", "could not resolve var: a/b/c"},
		}},
		{"bad argument", TestSequence{
			{`ns "a"`, `ns: argument 1 is not a symbol: "a"`},
		}},
	}
	RunTestSuite(t, tests)
}

func TestRefer(t *testing.T) {
	tests := TestSuite{
		{"refer", TestSequence{
			{"ns A", "#namespace[A]"},
			{"clojure.core/def x 1", "#'A/x"},
			{"clojure.core/ns B", "#namespace[B]"},
			{"clojure.core/refer A", "nil"},
			{"x", "1"},
			{"A/x", "1"},
		}},
		{"referred vars are shared", TestSequence{
			{"ns A", "#namespace[A]"},
			{"clojure.core/def x 1", "#'A/x"},
			{"clojure.core/ns B", "#namespace[B]"},
			{"clojure.core/refer A", "nil"},
			{"clojure.core/ns A", "#namespace[A]"},
			{"clojure.core/def x 2", "#'A/x"},
			{"clojure.core/ns B", "#namespace[B]"},
			{"x", "2"},
		}},
		{"missing namespace", TestSequence{
			{"refer nope", "no namespace: nope"},
		}},
	}
	RunTestSuite(t, tests)
}

func TestSymbol(t *testing.T) {
	tests := TestSuite{
		{"symbol", TestSequence{
			{`symbol "x"`, "x"},
			{`symbol "a/b"`, "a/b"},
			{`symbol "a" "b"`, "a/b"},
			{`symbol nil "b"`, "b"},
			{"symbol a/b", "a/b"},
			{"symbol 1", "symbol: argument 1 is not a string: 1"},
			{"symbol", "#fn[symbol]"},
		}},
	}
	RunTestSuite(t, tests)
}

func TestConsole(t *testing.T) {
	tests := TestSuite{
		{"literals", TestSequence{
			{"42", "command head is not a symbol: 42"},
			{`"s"`, `command head is not a symbol: "s"`},
			{":k", "command head is not a symbol: :k"},
			{"def k :doc", "#'user/k"},
			{"k", ":doc"},
			{"def f 2.5", "#'user/f"},
			{"f", "2.5"},
			{"f 1", "#'user/f is not callable: 2.5"},
		}},
		{"syntax errors", TestSequence{
			{"(def x", "test:1:1: unmatched ("},
			{"def (x)", "test:1:5: nested lists are not supported"},
		}},
	}
	RunTestSuite(t, tests)
}

func TestUserNamespaceOption(t *testing.T) {
	tests := TestSuite{
		{"custom user namespace", TestSequence{
			{"def x 1", "#'scratch/x"},
			{"user/x", "could not resolve var: user/x"},
		}},
	}
	RunTestSuite(t, tests, runtime.WithUserNamespace("scratch"))
}
