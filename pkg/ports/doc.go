/*
Package ports defines the driven ports (interfaces) of the generator.

These interfaces decouple the generation logic from the filesystem layout and
from optional collaborators, so operations can be tested against fakes.

# Key Interfaces

  - Workspace: Loads and persists the JSON documents of machine and arrangement folders.
  - StateSpaceGenerator: Produces Kripke structure artefacts for a machine representation.
  - RepresentationFactory: Builds the generation-ready form of one machine of an arrangement.
*/
package ports
