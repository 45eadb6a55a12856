package main

// toastExpiredMsg hides the toast with the matching id. Newer toasts carry a
// higher id, so an old timer never hides a fresh notification.
type toastExpiredMsg struct {
	id int
}

// initDrainMsg fires after a short delay so that stale terminal responses
// (e.g. OSC 11 background-color replies) are discarded before keys are read.
type initDrainMsg struct{}
