// Package cmd implements the sqlfmt CLI commands.
//
// Commands are provided to the fx graph via the Module value; Run wires
// them into a urfave/cli application and drives the fx lifecycle.
package cmd
