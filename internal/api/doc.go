// Package api provides the HTTP handlers of the trivia API.
//
// Handlers decode and validate requests, call the service layer and render
// JSON. Every error response uses the envelope written by
// shared.RespondWithErrorAndLog; MapErrorToStatusCode decides its status.
package api
