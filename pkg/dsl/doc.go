/*
Package dsl provides a Go DSL for programmatically constructing LLFSM machine models.

It builds the same domain.MachineModel an editor writes to model.json, using a fluent
builder instead of hand-written JSON. This is useful for generating machines from code,
for unit tests and for examples.

Example usage:

	b := dsl.New()
	b.Includes("library IEEE;", "use IEEE.std_logic_1164.all;")
	b.External("ping: out std_logic;", "pong: in std_logic;")
	b.Clock("clk", "5 MHz")

	b.Add("Initial").Go("SendPing")
	b.Add("SendPing").Uses("ping").OnExit("ping <= '1';").Go("WaitForPong")
	b.Add("WaitForPong").Uses("ping", "pong").
		Internal("ping <= '0';").
		OnEntry("ping <= '0';").
		Branch("pong = '1'", "SendPing")

	model, err := b.Build()

States are laid out top to bottom in the order they are added. The first state added is
the initial state unless Initial says otherwise.
*/
package dsl
