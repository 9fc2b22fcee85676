package workouts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/trainerdesk/internal/schedule/recurrence"
)

var (
	ErrTemplateNotFound  = errors.New("workout template not found")
	ErrInvalidTemplate   = errors.New("invalid workout template")
	ErrUnknownExercise   = errors.New("unknown exercise")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidAssignment = errors.New("invalid workout assignment")
)

type Item struct {
	ExerciseID  int `json:"exerciseId"`
	Sets        int `json:"sets"`
	Reps        int `json:"reps"`
	RestSeconds int `json:"restSeconds"`
}

type Section struct {
	Name      string `json:"name"`
	Exercises []Item `json:"exercises"`
}

type Template struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (t *Template) normalize() {
	t.Name = strings.TrimSpace(t.Name)
	t.Description = strings.TrimSpace(t.Description)
	if t.Sections == nil {
		t.Sections = []Section{}
	}
	for i := range t.Sections {
		t.Sections[i].Name = strings.TrimSpace(t.Sections[i].Name)
		if t.Sections[i].Exercises == nil {
			t.Sections[i].Exercises = []Item{}
		}
	}
}

// Validate checks the template shape and that every item refers to an exercise of the library.
func (t *Template) Validate(library Library) error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTemplate)
	}
	for si, section := range t.Sections {
		if section.Name == "" {
			return fmt.Errorf("%w: section %d has no name", ErrInvalidTemplate, si)
		}
		for ii, item := range section.Exercises {
			if item.Sets <= 0 || item.Reps <= 0 || item.RestSeconds < 0 {
				return fmt.Errorf("%w: section [%s] item %d: sets and reps must be positive", ErrInvalidTemplate, section.Name, ii)
			}
			if _, ok := library.ByID(item.ExerciseID); !ok {
				return fmt.Errorf("%w: %d", ErrUnknownExercise, item.ExerciseID)
			}
		}
	}
	return nil
}

// MoveItem removes the element at from and inserts it at to. The input slice is left untouched.
func MoveItem[T any](items []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return nil, fmt.Errorf("%w: move %d -> %d in %d items", ErrIndexOutOfRange, from, to, len(items))
	}

	moved := make([]T, 0, len(items))
	moved = append(moved, items[:from]...)
	moved = append(moved, items[from+1:]...)

	item := items[from]
	moved = append(moved, item)
	copy(moved[to+1:], moved[to:len(moved)-1])
	moved[to] = item
	return moved, nil
}

// MoveExercise reorders the exercises of one section.
func (t *Template) MoveExercise(section, from, to int) error {
	if section < 0 || section >= len(t.Sections) {
		return fmt.Errorf("%w: section %d of %d", ErrIndexOutOfRange, section, len(t.Sections))
	}
	moved, err := MoveItem(t.Sections[section].Exercises, from, to)
	if err != nil {
		return err
	}
	t.Sections[section].Exercises = moved
	return nil
}

// Assignment is a template handed to a client, optionally with a due date.
type Assignment struct {
	ID         int              `json:"id"`
	TemplateID int              `json:"templateId"`
	ClientID   int              `json:"clientId"`
	DueDate    *recurrence.Date `json:"dueDate,omitempty"`
	AssignedAt time.Time        `json:"assignedAt"`
}
