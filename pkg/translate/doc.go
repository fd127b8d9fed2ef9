// Package translate converts between the editor-facing MachineModel and the
// canonical Machine.
//
// Compile parses every VHDL fragment of a model and resolves state references
// to indices. Decompile renders a Machine back into a model, reattaching the
// layout of an existing model so that editor geometry survives the round trip.
package translate
