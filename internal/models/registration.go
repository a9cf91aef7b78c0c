package models

// RegistrationResult reports the outcome of a registration. The record is
// always durable once FichaID is assigned; Notified only says whether the
// ficha email went out. A failed notification never undoes the insert.
type RegistrationResult struct {
	FichaID     int64
	Notified    bool
	NotifyError string
}
