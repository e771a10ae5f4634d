// Package scoreevents defines the messages the score module publishes after
// a successful write. The highlights feed subscribes to invalidate its
// cache; the engine itself never sees these.
package scoreevents

import "time"

// TopicScoreRecorded is the pub/sub topic for recorded scores.
const TopicScoreRecorded = "score.recorded"

// ScoreRecordedPayload is the JSON body published on TopicScoreRecorded.
type ScoreRecordedPayload struct {
	PlayerID   string    `json:"player_id"`
	CourseID   int64     `json:"course_id"`
	Hole       int       `json:"hole"`
	Gross      int       `json:"gross"`
	RecordedAt time.Time `json:"recorded_at"`
}
