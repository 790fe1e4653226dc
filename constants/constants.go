package constants

import (
	"os"
	"strings"
)

// Equal temperament is the only tuning supported. Every frequency is derived
// from the fundamental note A4.
const (
	FundamentalNoteName      = "A"
	FundamentalNoteOctave    = 4
	FundamentalNoteFrequency = 440.0 // hz
)

const SemitonesInOctave = 12

// 11 is B-1 and 132 is C10
const (
	LowestMidiValue  = 11
	HighestMidiValue = 132
)

func GetListenAddr() string {
	addr := os.Getenv("SCALES_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetKeyboardName() string {
	name := os.Getenv("SCALES_KEYBOARD")
	if name != "" {
		return name
	}
	return "Teenage Engineering OP-1"
}

func GetLogLevel() string {
	level := os.Getenv("SCALES_LOG_LEVEL")
	if level != "" {
		return strings.ToLower(level)
	}
	return "info"
}

func GetExportDir() string {
	path := os.Getenv("SCALES_EXPORT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}
