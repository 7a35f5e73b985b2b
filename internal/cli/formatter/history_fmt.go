package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lessonsmith/internal/domain"
)

// FormatHistory renders archived lessons newest first.
func FormatHistory(lessons []*domain.ArchivedLesson, now time.Time) string {
	rows := make([][]string, 0, len(lessons))
	for _, l := range lessons {
		seq := "-"
		if l.SequenceID != nil && l.LessonNumber != nil {
			seq = fmt.Sprintf("%s #%d", ShortID(*l.SequenceID), *l.LessonNumber)
		}
		rows = append(rows, []string{
			ShortID(l.ID),
			Bold(l.Title),
			l.Grade,
			ScoreStyle(l.Score).Render(fmt.Sprintf("%d", l.Score)),
			seq,
			Dim(RelativeTimeFrom(l.CreatedAt, now)),
		})
	}
	return RenderTable([]string{"ID", "TITLE", "GRADE", "SCORE", "SEQUENCE", "SAVED"}, rows)
}

// FormatArchivedLesson shows one archived lesson with its saved card.
func FormatArchivedLesson(l *domain.ArchivedLesson) string {
	title := fmt.Sprintf("%s  %s", l.Title, Dim(l.ID))
	body := fmt.Sprintf("%s · %s · %s · %d점", l.Sport, l.Grade, l.Engine, l.Score)
	if l.Body != "" {
		body += "\n\n" + l.Body
	}
	return RenderBox(title, body) + "\n"
}
