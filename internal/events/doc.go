// Package events provides an in-memory publish/subscribe mechanism for
// question lifecycle events.
//
// Services emit events without knowing which handlers will process them.
// The server registers an AuditLogHandler that records every question
// created or deleted through the API.
package events
