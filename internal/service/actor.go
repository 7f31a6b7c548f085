package service

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID  string
	IsAdmin bool
}

// CanRead reports whether the actor may see data owned by userID.
func (a Actor) CanRead(userID string) bool {
	return a.IsAdmin || a.UserID == userID
}
