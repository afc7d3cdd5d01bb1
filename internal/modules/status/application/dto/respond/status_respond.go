package respond

import "time"

type StatusCheckRespond struct {
	Id         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
