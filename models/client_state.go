package models

// ClientState is the JSON document persisted next to the database file.
//
// It survives restarts and carries everything the application needs to
// resume where the user left off: the per-install identifier, the optional
// remember-me token, and the last selected session per user.
type ClientState struct {
	// InstallID is a UUID generated on first launch. It identifies this
	// installation in log output and never changes afterwards.
	InstallID string `json:"install_id"`

	// Token is the compact serialized remember-me JWT.
	// Empty when the user logged in without the remember flag.
	Token string `json:"token,omitempty"`

	// LastSessions maps user ID to the session selected when the
	// application exited, so the next login lands on the same session.
	LastSessions map[int64]int64 `json:"last_sessions,omitempty"`
}

// LastSession returns the remembered session for the given user
// and false when nothing was remembered.
func (s *ClientState) LastSession(userID int64) (int64, bool) {
	if s.LastSessions == nil {
		return 0, false
	}

	sessionID, ok := s.LastSessions[userID]

	return sessionID, ok
}

// RememberSession records the selected session for the given user.
func (s *ClientState) RememberSession(userID, sessionID int64) {
	if s.LastSessions == nil {
		s.LastSessions = make(map[int64]int64, 1)
	}

	s.LastSessions[userID] = sessionID
}
