// Package errs defines the error types returned to API clients.
//
// Every error that leaves a handler is funnelled into an HTTPError so the
// browser client always receives the same JSON shape:
//
//	{"code":"CONFLICT","message":"...","status":409,"override":true,"errors":[],"action":null}
package errs
