/*
Package codegen turns canonical machines and arrangements into VHDL.

A MachineRepresentation checks that a Machine can be expressed as a single
synthesisable entity and renders it with File. The generated architecture runs
one ringlet per state per clock sequence:

	ReadSnapshot -> OnEntry -> CheckTransition -> Internal | OnExit -> WriteSnapshot

An ArrangementRepresentation instantiates several machine entities and wires
their ports to the arrangement's shared signals and clocks.
*/
package codegen
