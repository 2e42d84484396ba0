package domain

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrSlotNotFound    = errors.New("slot not found")
	ErrProjectNotFound = errors.New("project data not found")
)
