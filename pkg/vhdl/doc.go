/*
Package vhdl parses and renders the VHDL fragments that make up an LLFSM.

Editors store machine content as free text: port declarations, signal
declarations, library clauses, guard expressions and action bodies. This
package turns each fragment into a typed value and renders it back in a
canonical form, so a machine can be persisted as validated data and
exported again without loss.

Comments survive the trip. In action bodies a comment is a Comment
statement; around declarations it is kept as Trivia of the declaration
it belongs to. A comment anywhere else, such as inside an expression, is
a syntax error rather than being dropped.

Only the subset of VHDL used inside LLFSM states is understood. Fragments
outside that subset are rejected with a *SyntaxError.
*/
package vhdl
