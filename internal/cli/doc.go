// Package cli provides the interactive cybermem command-line client.
//
// It wires configuration, the two JSON-backed stores, the image directory,
// and optional voice capture into an interactive REPL. Typical flow:
// register or log in, then record and recall procedure topics.
//
// Commands:
//   - register / login / logout
//   - add — create a topic from text, an image upload, or voice input
//   - recall — render a topic's steps in order
//   - edit / delete
//   - list / search
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
