package logging

import (
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

var sentryLevels = map[log.Level]sentry.Level{
	log.PanicLevel: sentry.LevelFatal,
	log.FatalLevel: sentry.LevelFatal,
	log.ErrorLevel: sentry.LevelError,
	log.WarnLevel:  sentry.LevelWarning,
	log.InfoLevel:  sentry.LevelInfo,
	log.DebugLevel: sentry.LevelDebug,
	log.TraceLevel: sentry.LevelDebug,
}

// SentryHook forwards logrus entries of the given levels to sentry.
type SentryHook struct {
	levels       []log.Level
	hub          *sentry.Hub
	flushTimeout time.Duration
}

func NewSentryHook(levels []log.Level) *SentryHook {
	return &SentryHook{
		levels:       levels,
		hub:          sentry.CurrentHub(),
		flushTimeout: 2 * time.Second,
	}
}

func (h *SentryHook) Levels() []log.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *log.Entry) error {
	event := EntryToEvent(entry)
	h.hub.CaptureEvent(event)
	// the process is about to die, give the transport a chance
	if entry.Level == log.FatalLevel || entry.Level == log.PanicLevel {
		h.hub.Flush(h.flushTimeout)
	}
	return nil
}

// EntryToEvent converts a logrus entry into a sentry event. An error in the
// entry fields becomes the event exception.
func EntryToEvent(entry *log.Entry) *sentry.Event {
	event := sentry.NewEvent()
	event.Level = sentryLevels[entry.Level]
	event.Message = entry.Message
	event.Timestamp = entry.Time
	event.Logger = "logrus"

	for k, v := range entry.Data {
		if k == log.ErrorKey {
			continue
		}
		event.Extra[k] = v
	}

	var err error
	if e, ok := entry.Data[log.ErrorKey].(error); ok && e != nil {
		err = e
	}
	if err != nil {
		for e := err; e != nil; e = errors.Unwrap(e) {
			event.Exception = append(event.Exception, sentry.Exception{
				Value: e.Error(),
				Type:  "error",
			})
		}
	}

	return event
}
