// Package app contains the core application logic. It defines the main App
// struct and its configuration, and ties manifest loading, graph building and
// flattening together, decoupled from any specific entrypoint.
package app
