// Package cli wires configuration, adapters and transports for the typist binary.
package cli
