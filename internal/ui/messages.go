package ui

// spinnerTickMsg advances the loading spinner.
type spinnerTickMsg struct{}
