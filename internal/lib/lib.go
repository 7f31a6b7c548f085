// Package lib groups modules that do not fit strictly into other layers:
// calendar helpers, background jobs (Asynq), e-mail (Resend) and the XLSX
// report builder (excelize).
package lib
