// Package quiz implements question selection for quiz sessions.
//
// A session is tracked entirely by its caller, which sends the growing list
// of questions already asked on every request. The Selector is a pure
// function of that list, the requested category scope and the current
// contents of the question repository: it returns one random question that
// has not been asked yet, or nil once the session cap is reached or the
// scope is exhausted.
package quiz
