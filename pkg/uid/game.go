package uid

import "github.com/google/uuid"

// GenerateGameID returns a random id used to tag every log line of one game
func GenerateGameID() string {
	return uuid.NewString()
}
