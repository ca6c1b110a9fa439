package entity

// StaffMember represents one employee column on the scheduling grid.
type StaffMember struct {
	ID             string  `json:"id"`
	DisplayName    string  `json:"display_name"`
	AvatarInitials string  `json:"avatar_initials"`
	ColorToken     string  `json:"color_token"`
	Position       string  `json:"position"`
	ProfileImage   *string `json:"profile_image,omitempty"`
	IsActive       bool    `json:"is_active"`
}

// staffColorTokens is the fixed avatar palette; tokens are assigned by list
// position on every directory load and are not persisted.
var staffColorTokens = []string{"#6366f1", "#8b5cf6", "#06b6d4", "#10b981", "#f59e0b", "#ef4444"}

// ColorTokenFor returns the deterministic color token for a directory position.
func ColorTokenFor(position int) string {
	return staffColorTokens[position%len(staffColorTokens)]
}

// AvatarInitials builds display initials from a first/last name pair.
func AvatarInitials(firstName, lastName string) string {
	initials := ""
	if firstName != "" {
		initials += string([]rune(firstName)[0])
	}
	if lastName != "" {
		initials += string([]rune(lastName)[0])
	}
	return initials
}

// StaffDirectory is the ordered staff list plus the UI selection subset.
// The selection is reset to "all" on every reload; prior customization is
// intentionally discarded.
type StaffDirectory struct {
	Members  []StaffMember
	selected map[string]struct{}
}

// NewStaffDirectory builds a directory with every member selected.
func NewStaffDirectory(members []StaffMember) *StaffDirectory {
	d := &StaffDirectory{
		Members:  members,
		selected: make(map[string]struct{}, len(members)),
	}
	for _, m := range members {
		d.selected[m.ID] = struct{}{}
	}
	return d
}

// FindByID looks a member up by its server-issued id.
func (d *StaffDirectory) FindByID(id string) (*StaffMember, bool) {
	for i := range d.Members {
		if d.Members[i].ID == id {
			return &d.Members[i], true
		}
	}
	return nil, false
}

// Contains reports whether the id belongs to the directory.
func (d *StaffDirectory) Contains(id string) bool {
	_, ok := d.FindByID(id)
	return ok
}

// Toggle flips membership of one staff id in the selection subset.
// Returns false if the id is not in the directory.
func (d *StaffDirectory) Toggle(id string) bool {
	if !d.Contains(id) {
		return false
	}
	if _, ok := d.selected[id]; ok {
		delete(d.selected, id)
	} else {
		d.selected[id] = struct{}{}
	}
	return true
}

// IsSelected reports whether the member is in the visible subset.
func (d *StaffDirectory) IsSelected(id string) bool {
	_, ok := d.selected[id]
	return ok
}

// VisibleMembers returns the selected subset in directory order.
func (d *StaffDirectory) VisibleMembers() []StaffMember {
	visible := make([]StaffMember, 0, len(d.selected))
	for _, m := range d.Members {
		if d.IsSelected(m.ID) {
			visible = append(visible, m)
		}
	}
	return visible
}
