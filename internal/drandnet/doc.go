// Package drandnet selects and wraps drand network endpoints for timelock
// operations.
//
// Exactly two variants exist: the mainnet quicknet chain on api.drand.sh and
// the testnet quicknet-t chain on pl-us.testnet.drand.sh. Select maps the
// --testnet flag to one of them; no other variants are reachable.
//
// # Capability Interface
//
// A Client exposes only what the pipeline consumes:
//
//   - Network(): the variant name, used for reporting and auto-generated
//     filenames
//   - ChainInfo(ctx): diagnostic chain metadata (hash, scheme, public key)
//   - Handle(): the opaque tlock.Network passed to the encryption primitive
//
// The transport behind these calls (HTTP against a drand relay) is not
// exposed, so tests substitute a fake Client without touching the network.
//
// # Lifecycle
//
// A Client is constructed once per invocation and performs no I/O until
// ChainInfo or Handle is first used. The tlock handle is built lazily and
// exactly once; construction failures are cached, there are no retries.
package drandnet
