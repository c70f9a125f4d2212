/*
Package ports defines the driven ports (interfaces) for the fsnav navigator.

These interfaces decouple the navigation state machine from the file system
it queries and the session loop from the engine it drives.

# Key Interfaces

  - Storage: Reads attributes, directory entries and file lines (read-only).
  - Navigator: Classifies a raw line and applies it to a navigation State.
*/
package ports
