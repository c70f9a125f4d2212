/*
Package domain contains the core domain models of the fsnav navigator.

It defines the fixed command vocabulary, the parsed command value, the
navigation state threaded through a session, and the error taxonomy every
operation reports. This package is kept pure and free of I/O so the state
machine and the session loop can share it without coupling.

# Key Entities

  - Kind: One of the six operations a session understands (list, show, back, open, detail, exit).
  - Invocation: A classified command line with its argument tokens.
  - State: The current directory and the root boundary it may never leave.
  - ActionRequest: A structural representation of what the host should render.
  - Error: A classified failure carrying an ErrorCode.
*/
package domain
