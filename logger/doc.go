// Package logger provides structured logging for the client on top of
// zerolog. Components obtain a tagged logger via WithComponent and log
// with flat field maps.
package logger
