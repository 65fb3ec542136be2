// Package service wires MCP transport to the chase tool handlers.
//
// It knows how to run MCP over stdio and how to reach ChaseService; the
// meaning of each tool lives in the domain package.
package service
