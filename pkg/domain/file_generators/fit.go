// Package file_generators turns planned training days into binary FIT
// files that fitness platforms can import as loggable strength
// sessions.
package file_generators

import (
	"bytes"
	"fmt"
	"time"

	"github.com/muktihari/fit/encoder"
	"github.com/muktihari/fit/profile/mesgdef"
	"github.com/muktihari/fit/profile/typedef"
	"github.com/muktihari/fit/proto"

	"github.com/fitglue/planner/pkg/domain/planner"
)

const (
	secondsPerRep = 3
	restSeconds   = 90
	productID     = 1
)

// GenerateDayFile encodes one training day as a FIT strength session
// template starting at the given time. Each planned set becomes an
// active Set message with a rest Set between them.
func GenerateDayFile(day planner.Day, start time.Time) ([]byte, error) {
	if day.Rest {
		return nil, fmt.Errorf("day %d is a rest day", day.Weekday)
	}
	if len(day.Slots) == 0 {
		return nil, fmt.Errorf("day %d has no exercises", day.Weekday)
	}

	fit := &proto.FIT{
		Messages: []proto.Message{},
	}

	fileId := mesgdef.NewFileId(nil).
		SetType(typedef.FileActivity).
		SetManufacturer(typedef.ManufacturerDevelopment).
		SetProduct(productID).
		SetTimeCreated(start)
	fit.Messages = append(fit.Messages, fileId.ToMesg(nil))

	activityMsg := mesgdef.NewActivity(nil).
		SetTimestamp(start).
		SetType(typedef.ActivityManual).
		SetNumSessions(1)
	fit.Messages = append(fit.Messages, activityMsg.ToMesg(nil))

	cur := start
	msgIndex := 0
	var setMsgs []proto.Message

	for _, slot := range day.Slots {
		category := MapExerciseToCategory(slot.Exercise)
		workSeconds := slot.Targets.Reps * secondsPerRep

		for s := 0; s < slot.Targets.Sets; s++ {
			active := mesgdef.NewSet(nil).
				SetTimestamp(cur).
				SetStartTime(cur).
				SetCategory([]typedef.ExerciseCategory{category}).
				SetSetType(typedef.SetTypeActive).
				SetMessageIndex(typedef.MessageIndex(msgIndex)).
				SetRepetitions(uint16(slot.Targets.Reps)).
				SetDuration(uint32(workSeconds * 1000))
			setMsgs = append(setMsgs, active.ToMesg(nil))
			msgIndex++
			cur = cur.Add(time.Duration(workSeconds) * time.Second)

			rest := mesgdef.NewSet(nil).
				SetTimestamp(cur).
				SetStartTime(cur).
				SetSetType(typedef.SetTypeRest).
				SetMessageIndex(typedef.MessageIndex(msgIndex)).
				SetDuration(uint32(restSeconds * 1000))
			setMsgs = append(setMsgs, rest.ToMesg(nil))
			msgIndex++
			cur = cur.Add(restSeconds * time.Second)
		}
	}

	elapsed := cur.Sub(start)
	sessionMsg := mesgdef.NewSession(nil).
		SetTimestamp(start).
		SetSport(typedef.SportTraining).
		SetStartTime(start).
		SetTotalElapsedTime(uint32(elapsed.Milliseconds())).
		SetTotalTimerTime(uint32(elapsed.Milliseconds()))
	fit.Messages = append(fit.Messages, sessionMsg.ToMesg(nil))
	fit.Messages = append(fit.Messages, setMsgs...)

	var buf bytes.Buffer
	enc := encoder.New(&buf)
	if err := enc.Encode(fit); err != nil {
		return nil, fmt.Errorf("failed to encode FIT file: %w", err)
	}

	return buf.Bytes(), nil
}
