/*
Package domain contains the data model of the LLFSM generator.

It defines the two representations of a machine and of an arrangement:

  - The Model form (MachineModel, ArrangementModel) is what editors write. Its
    VHDL content is free text and it carries layout data.
  - The canonical form (Machine, Arrangement) holds validated, parsed values
    and is what code generation consumes.

It also defines the Kripke structure produced by state space generation and
GenerationError, the error type reported by every generator operation. The
package performs no I/O.
*/
package domain
