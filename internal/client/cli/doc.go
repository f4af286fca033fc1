// Package cli provides the interactive operator console of the users service.
//
// It wires configuration, the local session store, the API services and a
// REPL. On start the saved session is resumed when its token is still valid;
// otherwise the operator is asked for credentials.
//
// Commands:
//   - login / logout / whoami
//   - ping
//   - create, list [page] [limit], get, meta, find, summary
//   - update, remove, restore
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
