// Package domain translates MCP tool calls into ChaseService requests.
//
// Each tool maps its typed input onto the request fields ChaseService
// accepts and decodes the response into a typed result MCP clients can
// render.
package domain
