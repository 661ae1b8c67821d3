// Package models defines the core domain models for classboard.
//
// # Models
//
//   - Person: someone to be placed into a group (a "class"), optionally gendered and labeled
//   - Label: a user-defined tag with a display color from Palette
//   - Rule: a mutual-exclusion constraint over two or more people
//   - Settings: capacity class and group count
//   - AppState: the tuple of all of the above; the unit of undo/redo and persistence
//
// # Design Principles
//
//  1. **Ids, not pointers**: people, labels and rules reference each other by id strings
//  2. **Values, not references**: AppState.Clone is a deep copy so snapshots never alias
//  3. **Stable wire format**: JSON field names match documents already saved by browsers
//     under the local-storage key, so older saves and exported projects keep loading
//
// Groups are not stored as entities. A group is identified by its number (GroupID)
// between 1 and Settings.GroupCount; Unassigned is the holding area.
package models
