package editor

import (
	"fmt"
	"slices"

	"github.com/mmynk/billsplit/internal/models"
)

// TogglePersonAssignment adds the person to the item's assignment, or removes
// them if already there. Removing the last person deletes the assignment.
func (e *Editor) TogglePersonAssignment(itemID, personID string) error {
	if e.itemIndex(itemID) < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	if e.personIndex(personID) < 0 {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, personID)
	}

	i := e.assignmentIndex(itemID)
	switch {
	case i < 0:
		e.bill.Assignments = append(e.bill.Assignments, models.Assignment{
			ItemID:    itemID,
			PersonIDs: []string{personID},
		})
	case e.bill.Assignments[i].Has(personID):
		remaining := slices.DeleteFunc(e.bill.Assignments[i].PersonIDs, func(pid string) bool { return pid == personID })
		if len(remaining) == 0 {
			e.bill.Assignments = slices.Delete(e.bill.Assignments, i, i+1)
		} else {
			e.bill.Assignments[i].PersonIDs = remaining
		}
	default:
		e.bill.Assignments[i].PersonIDs = append(e.bill.Assignments[i].PersonIDs, personID)
	}
	e.touch()
	return nil
}

// AssignAllPeople assigns every person to the item, replacing its current
// assignment. With nobody on the bill the assignment is removed instead.
func (e *Editor) AssignAllPeople(itemID string) error {
	if e.itemIndex(itemID) < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	if len(e.bill.People) == 0 {
		e.removeAssignment(itemID)
		e.touch()
		return nil
	}

	all := make([]string, len(e.bill.People))
	for j, p := range e.bill.People {
		all[j] = p.ID
	}
	if i := e.assignmentIndex(itemID); i >= 0 {
		e.bill.Assignments[i].PersonIDs = all
	} else {
		e.bill.Assignments = append(e.bill.Assignments, models.Assignment{ItemID: itemID, PersonIDs: all})
	}
	e.touch()
	return nil
}

// ClearItemAssignments unassigns everyone from the item.
func (e *Editor) ClearItemAssignments(itemID string) error {
	if e.itemIndex(itemID) < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	e.removeAssignment(itemID)
	e.touch()
	return nil
}

func (e *Editor) removeAssignment(itemID string) {
	e.bill.Assignments = slices.DeleteFunc(e.bill.Assignments, func(a models.Assignment) bool {
		return a.ItemID == itemID
	})
}

func (e *Editor) assignmentIndex(itemID string) int {
	return slices.IndexFunc(e.bill.Assignments, func(a models.Assignment) bool { return a.ItemID == itemID })
}
