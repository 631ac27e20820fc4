// Package sway implements the platform interfaces over the sway/i3 IPC
// protocol: a unix socket carrying "i3-ipc" framed JSON messages.
//
// Importing the package registers it as the platform provider.
package sway
