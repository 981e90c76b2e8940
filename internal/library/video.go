// Package library builds the in-memory index of the videos in a folder.
package library

import (
	"fmt"
	"time"

	"stitch/internal/apperr"
)

// Video describes one media file as of the scan that produced it.
type Video struct {
	// Index is the position in the scan; command-line selection uses it.
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Stem   string `json:"stem"`
	Folder string `json:"folder"`
	Path   string `json:"path"`
	Size   int64  `json:"size"`

	// Created is zero when the filesystem does not report a birth time.
	Created  time.Time `json:"created,omitzero"`
	Modified time.Time `json:"modified"`
	Accessed time.Time `json:"accessed,omitzero"`

	DurationMinutes float64 `json:"duration_minutes"`
	Frames          int     `json:"frames"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`

	// Degraded is set when probe defaults were substituted.
	Degraded bool `json:"degraded,omitempty"`
}

// Resolution formats the frame size as WIDTHxHEIGHT.
func (v Video) Resolution() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}

func (v Video) DurationSeconds() float64 {
	return v.DurationMinutes * 60
}

// Select returns the video at position i of the most recent scan.
func Select(videos []Video, i int) (Video, error) {
	if len(videos) == 0 {
		return Video{}, apperr.Validationf("there are no videos in the folder")
	}
	if i < 0 || i >= len(videos) {
		return Video{}, apperr.Validationf("index %d is out of range (0-%d)", i, len(videos)-1)
	}
	return videos[i], nil
}
