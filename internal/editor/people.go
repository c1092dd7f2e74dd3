package editor

import (
	"fmt"
	"slices"

	"github.com/mmynk/billsplit/internal/models"
)

// PersonColors is the palette new people cycle through.
var PersonColors = []string{
	"#ef4444", "#f97316", "#eab308", "#22c55e", "#06b6d4",
	"#3b82f6", "#8b5cf6", "#ec4899", "#f59e0b", "#10b981",
}

// AddPerson appends a person, picking the next palette colour.
func (e *Editor) AddPerson(name string) (models.Person, error) {
	person := models.Person{
		ID:    e.newID(),
		Name:  name,
		Color: PersonColors[len(e.bill.People)%len(PersonColors)],
	}
	if err := validate.Struct(person); err != nil {
		return models.Person{}, invalid("person", err)
	}
	e.bill.People = append(e.bill.People, person)
	e.touch()
	return person, nil
}

// UpdatePerson applies a partial update to a person.
func (e *Editor) UpdatePerson(id string, update models.PersonUpdate) (models.Person, error) {
	i := e.personIndex(id)
	if i < 0 {
		return models.Person{}, fmt.Errorf("%w: %s", ErrPersonNotFound, id)
	}
	person := update.Apply(e.bill.People[i])
	if err := validate.Struct(person); err != nil {
		return models.Person{}, invalid("person", err)
	}
	e.bill.People[i] = person
	e.touch()
	return person, nil
}

// DeletePerson removes a person from the bill and from every assignment.
// Assignments left without people are dropped.
func (e *Editor) DeletePerson(id string) error {
	i := e.personIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, id)
	}
	e.bill.People = slices.Delete(e.bill.People, i, i+1)

	kept := e.bill.Assignments[:0]
	for _, a := range e.bill.Assignments {
		a.PersonIDs = slices.DeleteFunc(a.PersonIDs, func(pid string) bool { return pid == id })
		if len(a.PersonIDs) > 0 {
			kept = append(kept, a)
		}
	}
	e.bill.Assignments = kept
	e.touch()
	return nil
}

func (e *Editor) personIndex(id string) int {
	return slices.IndexFunc(e.bill.People, func(p models.Person) bool { return p.ID == id })
}
