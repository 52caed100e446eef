package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"taskhub/internal/core/domain"
)

type noteRow struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// noteList is the JSON-encoded notes column of the tasks table.
type noteList []noteRow

func (n noteList) Value() (driver.Value, error) {
	if n == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]noteRow(n))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (n *noteList) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*n = noteList{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into noteList", value)
	}
	if len(data) == 0 {
		*n = noteList{}
		return nil
	}

	var rows []noteRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("decoding notes: %w", err)
	}
	*n = rows
	return nil
}

func toNoteList(notes []domain.Note) noteList {
	list := make(noteList, 0, len(notes))
	for _, note := range notes {
		list = append(list, noteRow{
			ID:        note.ID,
			Content:   note.Content,
			CreatedAt: note.CreatedAt.UTC(),
			UpdatedAt: note.UpdatedAt.UTC(),
		})
	}
	return list
}

func (n noteList) toDomain() []domain.Note {
	notes := make([]domain.Note, 0, len(n))
	for _, row := range n {
		notes = append(notes, domain.Note{
			ID:        row.ID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return notes
}
